package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/Dosada05/club-manager/services"
)

type AuthHandler struct {
	sessions  services.SessionService
	jwtSecret []byte
}

func NewAuthHandler(sessions services.SessionService, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		sessions:  sessions,
		jwtSecret: []byte(jwtSecret),
	}
}

// Login выполняет вход по идентификатору пользователя. Пароля в этой
// модели данных нет. Неизвестный id — тихий no-op: 204 без тела,
// состояние сессии не меняется.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		UserID string `json:"user_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.UserID == "" {
		badRequestResponse(w, r, errors.New("user_id is required"))
		return
	}

	user, err := h.sessions.Login(r.Context(), input.UserID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if user == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"name":    user.FullName(),
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(h.jwtSecret)
	if err != nil {
		serverErrorResponse(w, r, fmt.Errorf("failed to sign token: %w", err))
		return
	}

	onboarded, err := h.sessions.Onboarded(r.Context())
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	response := jsonResponse{
		"token":     tokenString,
		"user":      user,
		"onboarded": onboarded,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	user, err := h.sessions.Current(r.Context())
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	onboarded, err := h.sessions.Onboarded(r.Context())
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	response := jsonResponse{
		"user":      user,
		"onboarded": onboarded,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AuthHandler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.CompleteOnboarding(r.Context()); err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	response := jsonResponse{"onboarded": true}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
