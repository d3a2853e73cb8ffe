package post_message

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/farmlink-service/internal/app/chat/domain"
	"github.com/light-bringer/farmlink-service/internal/app/chat/repo"
	"github.com/light-bringer/farmlink-service/internal/pkg/clock"
)

type recordingNotifier struct {
	published []*domain.Message
	err       error
}

func (n *recordingNotifier) Publish(ctx context.Context, msg *domain.Message) error {
	if n.err != nil {
		return n.err
	}
	n.published = append(n.published, msg)
	return nil
}

func TestInteractor_Execute(t *testing.T) {
	store := repo.NewMemoryTranscriptStore()
	notifier := &recordingNotifier{}
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	interactor := NewInteractor(store, notifier, clk, zap.NewNop())

	msg, err := interactor.Execute(context.Background(), &Request{
		ConversationID: "c1-f1",
		SenderID:       "c1",
		SenderRole:     domain.RoleCustomer,
		Body:           "Can you do 40 per kg for 10kg?",
	})
	require.NoError(t, err)

	t.Run("message gets an id and the clock's timestamp", func(t *testing.T) {
		assert.NotEmpty(t, msg.ID)
		assert.Equal(t, clk.Now(), msg.SentAt)
	})

	t.Run("message lands in the transcript", func(t *testing.T) {
		messages, err := store.ListMessages(context.Background(), "c1-f1")
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, msg.ID, messages[0].ID)
	})

	t.Run("notifier saw the message", func(t *testing.T) {
		require.Len(t, notifier.published, 1)
		assert.Equal(t, msg.ID, notifier.published[0].ID)
	})
}

func TestInteractor_Execute_ValidationFailsBeforePersisting(t *testing.T) {
	store := repo.NewMemoryTranscriptStore()
	interactor := NewInteractor(store, &recordingNotifier{}, clock.NewRealClock(), zap.NewNop())

	_, err := interactor.Execute(context.Background(), &Request{
		ConversationID: "c1-f1",
		SenderID:       "c1",
		SenderRole:     domain.RoleCustomer,
		Body:           "",
	})
	assert.ErrorIs(t, err, domain.ErrEmptyBody)

	messages, listErr := store.ListMessages(context.Background(), "c1-f1")
	require.NoError(t, listErr)
	assert.Empty(t, messages)
}

func TestInteractor_Execute_NotifyFailureIsNotFatal(t *testing.T) {
	store := repo.NewMemoryTranscriptStore()
	notifier := &recordingNotifier{err: errors.New("nats down")}
	interactor := NewInteractor(store, notifier, clock.NewRealClock(), zap.NewNop())

	msg, err := interactor.Execute(context.Background(), &Request{
		ConversationID: "c1-f1",
		SenderID:       "f1",
		SenderRole:     domain.RoleFarmer,
		Body:           "Deal.",
	})
	require.NoError(t, err)

	messages, listErr := store.ListMessages(context.Background(), "c1-f1")
	require.NoError(t, listErr)
	require.Len(t, messages, 1)
	assert.Equal(t, msg.ID, messages[0].ID)
}
