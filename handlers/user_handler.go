package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/club-manager/store"
)

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(st *store.Store) *UserHandler {
	return &UserHandler{store: st}
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user := h.store.UserByID(chi.URLParam(r, "userID"))
	if user == nil {
		notFoundResponse(w, r)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"user": user}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *UserHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	player := h.store.PlayerByID(chi.URLParam(r, "playerID"))
	if player == nil {
		notFoundResponse(w, r)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListChildren возвращает детей родителя; для остальных ролей список пуст.
func (h *UserHandler) ListChildren(w http.ResponseWriter, r *http.Request) {
	user := h.store.UserByID(chi.URLParam(r, "userID"))
	if user == nil {
		notFoundResponse(w, r)
		return
	}
	children := h.store.ChildrenOf(user)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"children": children}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *UserHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	chats := h.store.ChatsByUserID(chi.URLParam(r, "userID"))
	if err := writeJSON(w, http.StatusOK, jsonResponse{"chats": chats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
