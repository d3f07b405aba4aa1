package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/club-manager/middleware"
	"github.com/Dosada05/club-manager/models"
	"github.com/Dosada05/club-manager/services"
	"github.com/Dosada05/club-manager/store"
)

type EventHandler struct {
	events     services.EventService
	attendance services.AttendanceService
	store      *store.Store
}

func NewEventHandler(events services.EventService, attendance services.AttendanceService, st *store.Store) *EventHandler {
	return &EventHandler{events: events, attendance: attendance, store: st}
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	createdBy, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	var input services.CreateEventInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	event, err := h.events.CreateEvent(r.Context(), createdBy, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"event": event}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	event := h.store.EventByID(chi.URLParam(r, "eventID"))
	if event == nil {
		notFoundResponse(w, r)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"event": event}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SaveAttendance сохраняет отметки посещаемости события.
func (h *EventHandler) SaveAttendance(w http.ResponseWriter, r *http.Request) {
	markedBy, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	var input struct {
		Marks map[string]models.AttendanceOverride `json:"marks"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	event, err := h.events.SaveAttendance(r.Context(), chi.URLParam(r, "eventID"), markedBy, input.Marks)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"event": event}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventHandler) MarkAllPending(w http.ResponseWriter, r *http.Request) {
	markedBy, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	event, err := h.events.MarkAllPendingPresent(r.Context(), chi.URLParam(r, "eventID"), markedBy)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"event": event}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	var input services.SubmitResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	event, err := h.events.SubmitResult(r.Context(), chi.URLParam(r, "eventID"), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"event": event}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AttendanceSummary строит гистограмму посещаемости события. Тело
// запроса может нести несохранённые правки, они накрывают базовые
// записи, не мутируя их.
func (h *EventHandler) AttendanceSummary(w http.ResponseWriter, r *http.Request) {
	event := h.store.EventByID(chi.URLParam(r, "eventID"))
	if event == nil {
		notFoundResponse(w, r)
		return
	}

	var input struct {
		Overrides map[string]models.AttendanceOverride `json:"overrides"`
	}
	if r.ContentLength > 0 {
		if err := readJSON(w, r, &input); err != nil {
			badRequestResponse(w, r, err)
			return
		}
	}

	roster := h.store.PlayersByTeamID(event.TeamID)
	summary := h.attendance.Summarize(roster, event, input.Overrides)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"summary": summary}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
