package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/club-manager/store"
)

type TeamHandler struct {
	store *store.Store
}

func NewTeamHandler(st *store.Store) *TeamHandler {
	return &TeamHandler{store: st}
}

func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team := h.store.TeamByID(chi.URLParam(r, "teamID"))
	if team == nil {
		notFoundResponse(w, r)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"team": team}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players := h.store.PlayersByTeamID(chi.URLParam(r, "teamID"))
	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": players}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events := h.store.EventsByTeamID(chi.URLParam(r, "teamID"))
	if err := writeJSON(w, http.StatusOK, jsonResponse{"events": events}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
