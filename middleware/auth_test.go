package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/Dosada05/club-manager/models"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAuthenticatePutsClaimsInContext(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"user_id": "user-coach",
		"role":    "coach",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	var gotID string
	var gotRole models.UserRole
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		if gotID, err = GetUserIDFromContext(r.Context()); err != nil {
			t.Errorf("GetUserIDFromContext: %v", err)
		}
		if gotRole, err = GetUserRoleFromContext(r.Context()); err != nil {
			t.Errorf("GetUserRoleFromContext: %v", err)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	Authenticate(testSecret)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "user-coach" || gotRole != models.RoleCoach {
		t.Errorf("unexpected claims: id=%q role=%q", gotID, gotRole)
	}
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler must not run")
	})
	handler := Authenticate(testSecret)(next)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"expired", "Bearer " + signToken(t, jwt.MapClaims{
			"user_id": "user-coach",
			"role":    "coach",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rec.Code)
			}
		})
	}

	// Токен, подписанный другим секретом, тоже отклоняется.
	other, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-coach",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+other)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong secret: expected 401, got %d", rec.Code)
	}
}

func TestContextHelpersWithoutClaims(t *testing.T) {
	if _, err := GetUserIDFromContext(context.Background()); err == nil {
		t.Error("expected error for context without claims")
	}
	if _, err := GetUserRoleFromContext(context.Background()); err == nil {
		t.Error("expected error for context without claims")
	}
}

func TestGetUserRoleRejectsUnknownRole(t *testing.T) {
	ctx := context.WithValue(context.Background(), userContextKey, jwt.MapClaims{
		"user_id": "x",
		"role":    "admin",
	})
	if _, err := GetUserRoleFromContext(ctx); err == nil {
		t.Error("expected error for role outside the known set")
	}
}
