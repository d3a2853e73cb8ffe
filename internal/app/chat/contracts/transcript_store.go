package contracts

import (
	"context"

	"github.com/light-bringer/farmlink-service/internal/app/chat/domain"
)

// TranscriptStore persists negotiation transcripts. The storefront kept
// these in browser local storage; here the store is an injected dependency
// so transcripts survive sessions and are visible to both sides.
type TranscriptStore interface {
	// Append adds a message to its conversation's transcript.
	Append(ctx context.Context, msg *domain.Message) error

	// ListMessages returns a conversation's messages ordered by SentAt.
	ListMessages(ctx context.Context, conversationID string) ([]*domain.Message, error)

	// ListConversations returns the IDs of conversations the participant
	// has sent messages in.
	ListConversations(ctx context.Context, participantID string) ([]string, error)
}
