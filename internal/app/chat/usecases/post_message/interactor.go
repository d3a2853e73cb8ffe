package post_message

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/light-bringer/farmlink-service/internal/app/chat/contracts"
	"github.com/light-bringer/farmlink-service/internal/app/chat/domain"
	"github.com/light-bringer/farmlink-service/internal/pkg/clock"
)

// Request contains the data needed to post a chat message.
type Request struct {
	ConversationID string
	SenderID       string
	SenderRole     domain.Role
	Body           string
}

// Interactor handles the post message use case.
type Interactor struct {
	store    contracts.TranscriptStore
	notifier contracts.Notifier
	clock    clock.Clock
	logger   *zap.Logger
}

// NewInteractor creates a new post message interactor.
func NewInteractor(
	store contracts.TranscriptStore,
	notifier contracts.Notifier,
	clk clock.Clock,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		store:    store,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

// Execute validates, persists and announces a new message. Notification is
// best effort: once the transcript holds the message, a failed publish is
// logged and the message is still returned.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Message, error) {
	msg, err := domain.NewMessage(
		uuid.New().String(),
		req.ConversationID,
		req.SenderID,
		req.SenderRole,
		req.Body,
		i.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := i.store.Append(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}

	if err := i.notifier.Publish(ctx, msg); err != nil {
		i.logger.Warn("message notification failed",
			zap.String("conversation_id", msg.ConversationID),
			zap.String("message_id", msg.ID),
			zap.Error(err),
		)
	}

	return msg, nil
}
