package list_conversations

import (
	"context"

	"github.com/light-bringer/farmlink-service/internal/app/chat/contracts"
)

// Request contains the participant whose conversations to list.
type Request struct {
	ParticipantID string
}

// Query handles the list conversations query use case.
type Query struct {
	store contracts.TranscriptStore
}

// NewQuery creates a new list conversations query.
func NewQuery(store contracts.TranscriptStore) *Query {
	return &Query{store: store}
}

// Execute retrieves the IDs of conversations the participant has sent
// messages in.
func (q *Query) Execute(ctx context.Context, req *Request) ([]string, error) {
	return q.store.ListConversations(ctx, req.ParticipantID)
}
