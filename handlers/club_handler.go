package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/club-manager/store"
)

type ClubHandler struct {
	store *store.Store
}

func NewClubHandler(st *store.Store) *ClubHandler {
	return &ClubHandler{store: st}
}

func (h *ClubHandler) GetClub(w http.ResponseWriter, r *http.Request) {
	club := h.store.ClubByID(chi.URLParam(r, "clubID"))
	if club == nil {
		notFoundResponse(w, r)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"club": club}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ClubHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams := h.store.TeamsByClubID(chi.URLParam(r, "clubID"))
	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ClubHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements := h.store.AnnouncementsByClubID(chi.URLParam(r, "clubID"))
	if err := writeJSON(w, http.StatusOK, jsonResponse{"announcements": announcements}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ClubHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings := h.store.BookingsByClubID(chi.URLParam(r, "clubID"))
	if err := writeJSON(w, http.StatusOK, jsonResponse{"bookings": bookings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ClubHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	news := h.store.NewsByClubID(chi.URLParam(r, "clubID"))
	if err := writeJSON(w, http.StatusOK, jsonResponse{"news": news}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
