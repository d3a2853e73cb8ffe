package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrEmptyConversation = errors.New("conversation id cannot be empty")
	ErrEmptySender       = errors.New("sender id cannot be empty")
	ErrInvalidRole       = errors.New("sender role must be customer or farmer")
	ErrEmptyBody         = errors.New("message body cannot be empty")
)
