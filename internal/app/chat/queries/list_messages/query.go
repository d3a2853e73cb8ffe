package list_messages

import (
	"context"

	"github.com/light-bringer/farmlink-service/internal/app/chat/contracts"
	"github.com/light-bringer/farmlink-service/internal/app/chat/domain"
)

// Request contains the conversation whose transcript to fetch.
type Request struct {
	ConversationID string
}

// Query handles the list messages query use case.
type Query struct {
	store contracts.TranscriptStore
}

// NewQuery creates a new list messages query.
func NewQuery(store contracts.TranscriptStore) *Query {
	return &Query{store: store}
}

// Execute retrieves the transcript in send order.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*domain.Message, error) {
	return q.store.ListMessages(ctx, req.ConversationID)
}
