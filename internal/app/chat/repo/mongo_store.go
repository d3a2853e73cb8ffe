package repo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/light-bringer/farmlink-service/internal/app/chat/contracts"
	"github.com/light-bringer/farmlink-service/internal/app/chat/domain"
)

const messagesCollection = "chat_messages"

// messageDoc is the BSON shape of a transcript message.
type messageDoc struct {
	MessageID      string    `bson:"message_id"`
	ConversationID string    `bson:"conversation_id"`
	SenderID       string    `bson:"sender_id"`
	SenderRole     string    `bson:"sender_role"`
	Body           string    `bson:"body"`
	SentAt         time.Time `bson:"sent_at"`
}

// MongoTranscriptStore persists transcripts in MongoDB.
type MongoTranscriptStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoTranscriptStore connects to MongoDB, verifies the connection and
// ensures the transcript indexes exist.
func NewMongoTranscriptStore(ctx context.Context, uri, dbName string) (*MongoTranscriptStore, error) {
	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	coll := client.Database(dbName).Collection(messagesCollection)

	store := &MongoTranscriptStore{client: client, coll: coll}
	if err := store.ensureIndexes(ctx); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}

	return store, nil
}

var _ contracts.TranscriptStore = (*MongoTranscriptStore)(nil)

func (s *MongoTranscriptStore) ensureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "conversation_id", Value: 1}, {Key: "sent_at", Value: 1}}},
		{Keys: bson.D{{Key: "sender_id", Value: 1}}},
	}

	if _, err := s.coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("failed to create transcript indexes: %w", err)
	}
	return nil
}

// Append adds a message to its conversation's transcript.
func (s *MongoTranscriptStore) Append(ctx context.Context, msg *domain.Message) error {
	doc := messageDoc{
		MessageID:      msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		SenderRole:     string(msg.SenderRole),
		Body:           msg.Body,
		SentAt:         msg.SentAt,
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// ListMessages returns a conversation's messages ordered by SentAt.
func (s *MongoTranscriptStore) ListMessages(ctx context.Context, conversationID string) ([]*domain.Message, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "sent_at", Value: 1}})

	cursor, err := s.coll.Find(ctx, bson.M{"conversation_id": conversationID}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to query transcript: %w", err)
	}
	defer cursor.Close(ctx)

	messages := make([]*domain.Message, 0)
	for cursor.Next(ctx) {
		var doc messageDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode message: %w", err)
		}
		messages = append(messages, &domain.Message{
			ID:             doc.MessageID,
			ConversationID: doc.ConversationID,
			SenderID:       doc.SenderID,
			SenderRole:     domain.Role(doc.SenderRole),
			Body:           doc.Body,
			SentAt:         doc.SentAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transcript: %w", err)
	}

	return messages, nil
}

// ListConversations returns the IDs of conversations the participant has
// sent messages in.
func (s *MongoTranscriptStore) ListConversations(ctx context.Context, participantID string) ([]string, error) {
	raw, err := s.coll.Distinct(ctx, "conversation_id", bson.M{"sender_id": participantID})
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	ids := make([]string, 0, len(raw))
	for _, value := range raw {
		if id, ok := value.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Close disconnects the underlying client.
func (s *MongoTranscriptStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
