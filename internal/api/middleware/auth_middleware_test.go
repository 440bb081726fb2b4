package middleware_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/api/middleware"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test-secret-key-123456789012345")

type fakeUsers struct {
	users map[string]*models.User
	err   error
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}

func createTestToken(t *testing.T, subject string, duration time.Duration, key []byte, method jwt.SigningMethod) string {
	t.Helper()

	claims := &models.Claims{
		Role: models.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestAuthenticate(t *testing.T) {
	user := &models.User{ID: 42, Email: "test@example.com", Role: models.RoleUser}
	users := &fakeUsers{users: map[string]*models.User{user.Email: user}}

	tests := []struct {
		name       string
		header     string
		lookup     middleware.UserLookup
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "Valid token",
			header:     "Bearer " + createTestToken(t, user.Email, time.Hour, testJwtKey, jwt.SigningMethodHS256),
			lookup:     users,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "Missing header",
			lookup:     users,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Not a bearer header",
			header:     "Basic abc",
			lookup:     users,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Expired token",
			header:     "Bearer " + createTestToken(t, user.Email, -time.Hour, testJwtKey, jwt.SigningMethodHS256),
			lookup:     users,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Wrong signing key",
			header:     "Bearer " + createTestToken(t, user.Email, time.Hour, []byte("another-key"), jwt.SigningMethodHS256),
			lookup:     users,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Unexpected algorithm",
			header:     "Bearer " + createTestToken(t, user.Email, time.Hour, testJwtKey, jwt.SigningMethodHS512),
			lookup:     users,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Subject without user",
			header:     "Bearer " + createTestToken(t, "ghost@example.com", time.Hour, testJwtKey, jwt.SigningMethodHS256),
			lookup:     users,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "User lookup fails",
			header:     "Bearer " + createTestToken(t, user.Email, time.Hour, testJwtKey, jwt.SigningMethodHS256),
			lookup:     &fakeUsers{err: errors.New("connection refused")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true

				got, ok := middleware.UserFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, user.ID, got.ID)

				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/order/list", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			// Act
			middleware.NewAuthMiddleware(testJwtKey, tt.lookup).Authenticate(next).ServeHTTP(rr, req)

			// Assert
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, called)
		})
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := middleware.RequireRole(models.RoleAdmin)(next)

	t.Run("Admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/collection/list", nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserContextKey, &models.User{ID: 1, Role: models.RoleAdmin}))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("User is denied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/collection/list", nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserContextKey, &models.User{ID: 2, Role: models.RoleUser}))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "Access denied")
	})

	t.Run("No user in context", func(t *testing.T) {
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/collection/list", nil))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
