package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/club-manager/store"
)

type ChatHandler struct {
	store *store.Store
}

func NewChatHandler(st *store.Store) *ChatHandler {
	return &ChatHandler{store: st}
}

func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	if h.store.ChatByID(chatID) == nil {
		notFoundResponse(w, r)
		return
	}
	messages := h.store.MessagesByChatID(chatID)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"messages": messages}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
