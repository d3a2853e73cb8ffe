package repo

import (
	"context"
	"sort"
	"sync"

	"github.com/light-bringer/farmlink-service/internal/app/chat/contracts"
	"github.com/light-bringer/farmlink-service/internal/app/chat/domain"
)

// MemoryTranscriptStore keeps transcripts in process memory. It is the
// default backend for local development and the test double for the
// transcript contract.
type MemoryTranscriptStore struct {
	mu            sync.RWMutex
	conversations map[string][]*domain.Message
}

// NewMemoryTranscriptStore creates an empty in-memory transcript store.
func NewMemoryTranscriptStore() *MemoryTranscriptStore {
	return &MemoryTranscriptStore{
		conversations: make(map[string][]*domain.Message),
	}
}

var _ contracts.TranscriptStore = (*MemoryTranscriptStore)(nil)

// Append adds a message to its conversation's transcript.
func (s *MemoryTranscriptStore) Append(ctx context.Context, msg *domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *msg
	s.conversations[msg.ConversationID] = append(s.conversations[msg.ConversationID], &copied)
	return nil
}

// ListMessages returns a conversation's messages ordered by SentAt.
func (s *MemoryTranscriptStore) ListMessages(ctx context.Context, conversationID string) ([]*domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.conversations[conversationID]
	messages := make([]*domain.Message, 0, len(stored))
	for _, msg := range stored {
		copied := *msg
		messages = append(messages, &copied)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].SentAt.Before(messages[j].SentAt)
	})

	return messages, nil
}

// ListConversations returns the IDs of conversations the participant has
// sent messages in, in lexical order for determinism.
func (s *MemoryTranscriptStore) ListConversations(ctx context.Context, participantID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0)
	for id, messages := range s.conversations {
		for _, msg := range messages {
			if msg.SenderID == participantID {
				ids = append(ids, id)
				break
			}
		}
	}

	sort.Strings(ids)
	return ids, nil
}
