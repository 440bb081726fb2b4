package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/errors"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/utils/response"
)

// currentUser returns the authenticated user, answering 403 when the route was reached without one.
func currentUser(w http.ResponseWriter, r *http.Request) (*models.User, *slog.Logger, bool) {

	logger := middleware.LoggerFromContext(r.Context())

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		logger.Warn("Request without authenticated user")
		response.Error(w, appErrors.ForbiddenError("Authentication required"))
		return nil, logger, false
	}

	return user, logger.With(slog.Int64("userId", user.ID)), true
}
