package middleware

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	appErrors "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/errors"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const UserContextKey = contextKey("user")

// UserLookup resolves the token subject (an email) to the acting user.
type UserLookup interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthMiddleware struct {
	jwtKey []byte
	users  UserLookup
}

func NewAuthMiddleware(jwtKey []byte, users UserLookup) *AuthMiddleware {

	return &AuthMiddleware{jwtKey: jwtKey, users: users}

}

// Authenticate rejects requests without a valid bearer token with 403 Forbidden,
// the status clients of this API already rely on.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		// Get token from Authorization header
		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, appErrors.ForbiddenError("Authentication required"))
			return
		}

		// Token is of format : "Bearer <token>"
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			logger.Warn("Invalid authorization header format")
			response.Error(w, appErrors.ForbiddenError("Authentication required"))
			return
		}

		claims := &models.Claims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			return m.jwtKey, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

		if err != nil || !token.Valid {
			logger.Warn("JWT validation failed", slog.Any("error", err))
			response.Error(w, appErrors.ForbiddenError("Invalid or expired token"))
			return
		}

		email, err := claims.GetSubject()
		if err != nil || email == "" {
			logger.Warn("JWT without subject")
			response.Error(w, appErrors.ForbiddenError("Invalid or expired token"))
			return
		}

		user, err := m.users.GetUserByEmail(r.Context(), email)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				logger.Warn("Token subject does not match any user", slog.String("email", email))
				response.Error(w, appErrors.ForbiddenError("Invalid or expired token"))
				return
			}

			logger.Error("Failed to load authenticated user", slog.String("error", err.Error()))
			response.Error(w, appErrors.DatabaseError("Failed to authenticate user").WithError(err))
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)

		requestScopedLogger := logger.With(slog.Int64("userId", user.ID))
		ctx = context.WithValue(ctx, LoggerKey, requestScopedLogger)

		requestScopedLogger.Debug("User authenticated")

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole only lets users holding role through; it must run after Authenticate.
func RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			user, ok := UserFromContext(r.Context())
			if !ok {
				response.Error(w, appErrors.ForbiddenError("Authentication required"))
				return
			}

			if user.Role != role {
				LoggerFromContext(r.Context()).Warn("Insufficient role",
					slog.String("required", string(role)),
					slog.String("actual", string(user.Role)),
				)
				response.Error(w, appErrors.ForbiddenError("Access denied"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	return user, ok && user != nil
}
