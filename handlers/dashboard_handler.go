package handlers

import (
	"net/http"

	"github.com/Dosada05/club-manager/middleware"
	"github.com/Dosada05/club-manager/services"
	"github.com/Dosada05/club-manager/store"
)

type DashboardHandler struct {
	dashboards services.DashboardService
	store      *store.Store
}

func NewDashboardHandler(dashboards services.DashboardService, st *store.Store) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards, store: st}
}

// Get отдаёт дашборд текущего пользователя. Вариант выбирается по
// роли из токена — других различий в доступе нет.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}
	user := h.store.UserByID(userID)
	if user == nil {
		notFoundResponse(w, r)
		return
	}

	dashboard, err := h.dashboards.ForUser(r.Context(), user)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"dashboard": dashboard}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
