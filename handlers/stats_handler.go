package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/club-manager/services"
)

type StatsHandler struct {
	stats services.StatsService
}

func NewStatsHandler(stats services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) GetTeamRecord(w http.ResponseWriter, r *http.Request) {
	record := h.stats.TeamRecord(chi.URLParam(r, "teamID"))
	if err := writeJSON(w, http.StatusOK, jsonResponse{"record": record}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StatsHandler) GetClubStandings(w http.ResponseWriter, r *http.Request) {
	standings := h.stats.ClubStandings(chi.URLParam(r, "clubID"))
	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StatsHandler) GetPlayerTallies(w http.ResponseWriter, r *http.Request) {
	tallies := h.stats.PlayerTallies(chi.URLParam(r, "teamID"))
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tallies": tallies}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StatsHandler) GetTopScorers(w http.ResponseWriter, r *http.Request) {
	scorers := h.stats.TopScorers(chi.URLParam(r, "teamID"), limitParam(r, 5))
	if err := writeJSON(w, http.StatusOK, jsonResponse{"scorers": scorers}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StatsHandler) GetTopAssisters(w http.ResponseWriter, r *http.Request) {
	assisters := h.stats.TopAssisters(chi.URLParam(r, "teamID"), limitParam(r, 5))
	if err := writeJSON(w, http.StatusOK, jsonResponse{"assisters": assisters}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetTrends — тренды команды: текущее 30-дневное окно против предыдущего.
func (h *StatsHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	response := jsonResponse{
		"win_rate":   h.stats.WinRateTrend(teamID),
		"attendance": h.stats.AttendanceTrend(teamID),
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func limitParam(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
