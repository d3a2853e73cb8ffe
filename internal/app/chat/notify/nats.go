// Package notify publishes chat events so open chat views learn about new
// messages without polling the transcript store.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/light-bringer/farmlink-service/internal/app/chat/contracts"
	"github.com/light-bringer/farmlink-service/internal/app/chat/domain"
)

// messageEvent is the wire shape published for a new message.
type messageEvent struct {
	MessageID      string    `json:"message_id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	SenderRole     string    `json:"sender_role"`
	Body           string    `json:"body"`
	SentAt         time.Time `json:"sent_at"`
}

// NATSNotifier publishes new-message events on
// <subjectPrefix>.<conversationID>.
type NATSNotifier struct {
	conn          *nats.Conn
	subjectPrefix string
}

// NewNATSNotifier connects to the NATS server at url.
func NewNATSNotifier(url, subjectPrefix string) (*NATSNotifier, error) {
	conn, err := nats.Connect(url, nats.Name("farmlink-chat"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSNotifier{conn: conn, subjectPrefix: subjectPrefix}, nil
}

var _ contracts.Notifier = (*NATSNotifier)(nil)

// Publish announces a freshly appended message.
func (n *NATSNotifier) Publish(ctx context.Context, msg *domain.Message) error {
	payload, err := json.Marshal(messageEvent{
		MessageID:      msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		SenderRole:     string(msg.SenderRole),
		Body:           msg.Body,
		SentAt:         msg.SentAt,
	})
	if err != nil {
		return fmt.Errorf("failed to serialize message event: %w", err)
	}

	subject := fmt.Sprintf("%s.%s", n.subjectPrefix, msg.ConversationID)
	if err := n.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("failed to publish message event: %w", err)
	}
	return nil
}

// Close drains the connection.
func (n *NATSNotifier) Close() {
	n.conn.Drain()
}

// NoopNotifier is used when no NATS server is configured.
type NoopNotifier struct{}

// Publish does nothing.
func (NoopNotifier) Publish(ctx context.Context, msg *domain.Message) error {
	return nil
}
