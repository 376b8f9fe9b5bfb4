package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"havahills/backoffice/internal/auth"
	"havahills/backoffice/internal/common"
	"havahills/backoffice/internal/models/dtos"
)

// ChatHistory handles GET /chat/messages.
func (h *Handlers) ChatHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		messages, err := h.deps.Services.Chat.History(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch messages")
			return
		}

		common.RespondSuccess(w, initTime, "Messages fetched", messages)
	}
}

// PostChatMessage handles POST /chat/messages. The sender comes from the
// session, never the body.
func (h *Handlers) PostChatMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.PostMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}

		session := auth.GetSessionData(r.Context())
		msg, err := h.deps.Services.Chat.PostMessage(r.Context(), session, req.Content)
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Message posted", msg, http.StatusCreated)
	}
}

// ChatUnread handles GET /chat/unread?after=<id>.
func (h *Handlers) ChatUnread() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		after, _ := strconv.ParseUint(r.URL.Query().Get("after"), 10, 32)
		count, err := h.deps.Services.Chat.UnreadCount(r.Context(), uint(after))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to count messages")
			return
		}

		common.RespondSuccess(w, initTime, "Unread counted", map[string]int64{"count": count})
	}
}
