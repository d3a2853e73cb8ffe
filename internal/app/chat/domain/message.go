package domain

import "time"

// Role identifies which side of a negotiation sent a message.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleFarmer   Role = "farmer"
)

// Message is a single entry in a negotiation transcript between a customer
// and a farmer. Messages are immutable once appended.
type Message struct {
	ID             string
	ConversationID string
	SenderID       string
	SenderRole     Role
	Body           string
	SentAt         time.Time
}

// NewMessage validates and builds a transcript message. ID generation and
// timestamping are the caller's concern so the constructor stays pure.
func NewMessage(id, conversationID, senderID string, role Role, body string, sentAt time.Time) (*Message, error) {
	if conversationID == "" {
		return nil, ErrEmptyConversation
	}
	if senderID == "" {
		return nil, ErrEmptySender
	}
	if role != RoleCustomer && role != RoleFarmer {
		return nil, ErrInvalidRole
	}
	if body == "" {
		return nil, ErrEmptyBody
	}

	return &Message{
		ID:             id,
		ConversationID: conversationID,
		SenderID:       senderID,
		SenderRole:     role,
		Body:           body,
		SentAt:         sentAt,
	}, nil
}
