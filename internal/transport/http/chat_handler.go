package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/farmlink-service/internal/app/chat/domain"
	"github.com/light-bringer/farmlink-service/internal/app/chat/queries/list_conversations"
	"github.com/light-bringer/farmlink-service/internal/app/chat/queries/list_messages"
	"github.com/light-bringer/farmlink-service/internal/app/chat/usecases/post_message"
	"github.com/light-bringer/farmlink-service/internal/pkg/metrics"
)

// ChatHandler exposes the conversation transcript endpoints.
type ChatHandler struct {
	postMessage       *post_message.Interactor
	listMessages      *list_messages.Query
	listConversations *list_conversations.Query
	logger            *zap.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(
	postMessage *post_message.Interactor,
	listMessages *list_messages.Query,
	listConversations *list_conversations.Query,
	logger *zap.Logger,
) *ChatHandler {
	return &ChatHandler{
		postMessage:       postMessage,
		listMessages:      listMessages,
		listConversations: listConversations,
		logger:            logger,
	}
}

type postMessageRequest struct {
	SenderID   string `json:"sender_id"`
	SenderRole string `json:"sender_role"`
	Body       string `json:"body"`
}

type messageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	SenderRole     string    `json:"sender_role"`
	Body           string    `json:"body"`
	SentAt         time.Time `json:"sent_at"`
}

type listMessagesResponse struct {
	Messages []messageResponse `json:"messages"`
}

func toMessageResponse(msg *domain.Message) messageResponse {
	return messageResponse{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		SenderRole:     string(msg.SenderRole),
		Body:           msg.Body,
		SentAt:         msg.SentAt,
	}
}

// PostMessage handles POST /api/v1/conversations/{id}/messages.
func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	conversationID := r.PathValue("id")

	var req postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}

	msg, err := h.postMessage.Execute(r.Context(), &post_message.Request{
		ConversationID: conversationID,
		SenderID:       req.SenderID,
		SenderRole:     domain.Role(req.SenderRole),
		Body:           req.Body,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyConversation),
			errors.Is(err, domain.ErrEmptySender),
			errors.Is(err, domain.ErrInvalidRole),
			errors.Is(err, domain.ErrEmptyBody):
			writeError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			h.logger.Error("post message failed",
				zap.String("conversation_id", conversationID),
				zap.Error(err),
			)
			writeError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to post message")
		}
		return
	}

	metrics.ChatMessagesPosted.Inc()

	writeJSON(w, http.StatusCreated, toMessageResponse(msg))
}

// ListMessages handles GET /api/v1/conversations/{id}/messages.
func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	conversationID := r.PathValue("id")

	messages, err := h.listMessages.Execute(r.Context(), &list_messages.Request{
		ConversationID: conversationID,
	})
	if err != nil {
		h.logger.Error("list messages failed",
			zap.String("conversation_id", conversationID),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to list messages")
		return
	}

	out := make([]messageResponse, 0, len(messages))
	for _, msg := range messages {
		out = append(out, toMessageResponse(msg))
	}

	writeJSON(w, http.StatusOK, listMessagesResponse{Messages: out})
}

type listConversationsResponse struct {
	ConversationIDs []string `json:"conversation_ids"`
}

// ListConversations handles GET /api/v1/conversations.
func (h *ChatHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	participantID := r.URL.Query().Get("participant_id")
	if participantID == "" {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "participant_id is required")
		return
	}

	ids, err := h.listConversations.Execute(r.Context(), &list_conversations.Request{
		ParticipantID: participantID,
	})
	if err != nil {
		h.logger.Error("list conversations failed",
			zap.String("participant_id", participantID),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to list conversations")
		return
	}

	writeJSON(w, http.StatusOK, listConversationsResponse{ConversationIDs: ids})
}
