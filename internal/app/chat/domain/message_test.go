package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	sentAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("valid message", func(t *testing.T) {
		msg, err := NewMessage("m1", "c1-f1", "c1", RoleCustomer, "Is the honey raw?", sentAt)
		require.NoError(t, err)
		assert.Equal(t, "c1-f1", msg.ConversationID)
		assert.Equal(t, RoleCustomer, msg.SenderRole)
		assert.Equal(t, sentAt, msg.SentAt)
	})

	t.Run("empty conversation", func(t *testing.T) {
		_, err := NewMessage("m1", "", "c1", RoleCustomer, "hi", sentAt)
		assert.ErrorIs(t, err, ErrEmptyConversation)
	})

	t.Run("empty sender", func(t *testing.T) {
		_, err := NewMessage("m1", "c1-f1", "", RoleFarmer, "hi", sentAt)
		assert.ErrorIs(t, err, ErrEmptySender)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := NewMessage("m1", "c1-f1", "x1", Role("admin"), "hi", sentAt)
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := NewMessage("m1", "c1-f1", "c1", RoleCustomer, "", sentAt)
		assert.ErrorIs(t, err, ErrEmptyBody)
	})
}
