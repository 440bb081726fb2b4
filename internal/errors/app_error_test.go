package errors_test

import (
	"database/sql"
	"fmt"
	"net/http"
	"testing"

	appErrors "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		name   string
		err    *appErrors.AppError
		code   string
		status int
	}{
		{"validation", appErrors.ValidationError("bad"), appErrors.ErrCodeValidation, http.StatusBadRequest},
		{"not found", appErrors.NotFoundError("missing"), appErrors.ErrCodeNotFound, http.StatusNotFound},
		{"unauthorized", appErrors.UnauthorizedError("nope"), appErrors.ErrCodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", appErrors.ForbiddenError("nope"), appErrors.ErrCodeForbidden, http.StatusForbidden},
		{"conflict", appErrors.ConflictError("taken"), appErrors.ErrCodeConflict, http.StatusConflict},
		{"hierarchy", appErrors.InvalidHierarchyError("deep"), appErrors.ErrCodeInvalidHierarchy, http.StatusBadRequest},
		{"database", appErrors.DatabaseError("db"), appErrors.ErrCodeDatabaseError, http.StatusInternalServerError},
		{"too many", appErrors.TooManyRequestsError("slow down"), appErrors.ErrCodeTooManyRequests, http.StatusTooManyRequests},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.err.Code)
			assert.Equal(t, tc.status, tc.err.StatusCode)
		})
	}
}

func TestIsAppError(t *testing.T) {
	t.Run("Wrapped AppError is found", func(t *testing.T) {
		// Arrange
		cause := appErrors.NotFoundError("Collection not found").WithError(sql.ErrNoRows)
		wrapped := fmt.Errorf("outer: %w", cause)

		// Act
		appErr, ok := appErrors.IsAppError(wrapped)

		// Assert
		require.True(t, ok)
		assert.Equal(t, "Collection not found", appErr.Message)
		assert.ErrorIs(t, wrapped, sql.ErrNoRows)
	})

	t.Run("Plain error is not an AppError", func(t *testing.T) {
		appErr, ok := appErrors.IsAppError(fmt.Errorf("boom"))

		assert.False(t, ok)
		assert.Nil(t, appErr)
	})

	t.Run("WithDetail sets detail", func(t *testing.T) {
		err := appErrors.ConflictError("Conflict").WithDetail("product 'Tee'")

		assert.Equal(t, "product 'Tee'", err.Detail)
		assert.Equal(t, "Conflict", err.Error())
	})
}
