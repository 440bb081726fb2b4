package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/errors"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	repository "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/repositories"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/utils"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/pkg/google"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GoogleLogin(ctx context.Context, req *models.GoogleAuthRequest) (*models.AuthResponse, error)
	Role(user *models.User) *models.AuthResponse
	AccountMenu(user *models.User) *models.AuthResponse
}

type authService struct {
	users    repository.UserRepository
	limiter  repository.RateLimitRepository
	google   google.TokenVerifier
	jwtKey   []byte
	tokenTTL time.Duration
}

func NewAuthService(users repository.UserRepository, limiter repository.RateLimitRepository, verifier google.TokenVerifier, jwtKey []byte, tokenTTL time.Duration) AuthService {
	return &authService{
		users:    users,
		limiter:  limiter,
		google:   verifier,
		jwtKey:   jwtKey,
		tokenTTL: tokenTTL,
	}
}

// MenuItems lists the account menu entries a role may open.
func MenuItems(role models.Role) []string {
	if role == models.RoleAdmin {
		return []string{"ORDER", "ADDRESS", "PRODUCTS", "BILLING", "CONFIGURATION"}
	}
	return []string{"ORDER", "ADDRESS"}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {

	logger := middleware.LoggerFromContext(ctx)
	email := normalizeEmail(req.Email)

	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, appErrors.ConflictError("Email already in use")
	}
	if !isNotFound(err) {
		return nil, appErrors.DatabaseError("Failed to check email").WithError(err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		FirstName:    utils.Sanitize(req.FirstName),
		LastName:     utils.Sanitize(req.LastName),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleUser,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if hasPQCode(err, pqUniqueViolation) {
			return nil, appErrors.ConflictError("Email already in use").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to create user").WithError(err)
	}

	logger.Info("User signed up", slog.Int64("userId", user.ID))

	return s.issue(user)
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {

	email := normalizeEmail(req.Email)

	allowed, _, retryAfter, err := s.limiter.CheckLoginRateLimit(ctx, email)
	if err != nil {
		return nil, appErrors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return nil, appErrors.TooManyRequestsError("Too many login attempts. Please try again later.").WithRetryAfter(retryAfter)
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.UnauthorizedError("Invalid credentials")
		}
		return nil, appErrors.DatabaseError("Failed to load user").WithError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, appErrors.UnauthorizedError("Invalid credentials")
	}

	return s.issue(user)
}

// GoogleLogin signs in the owner of a verified Google email, creating the account on first use.
// Provisioned accounts get a random password hash so they cannot log in with a password.
func (s *authService) GoogleLogin(ctx context.Context, req *models.GoogleAuthRequest) (*models.AuthResponse, error) {

	logger := middleware.LoggerFromContext(ctx)

	identity, err := s.google.Verify(ctx, req.GoogleToken)
	if err != nil {
		logger.Warn("Google token rejected", slog.Any("error", err))
		return nil, appErrors.UnauthorizedError("Invalid Google token").WithError(err)
	}

	email := normalizeEmail(identity.Email)

	user, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return s.issue(user)
	}
	if !isNotFound(err) {
		return nil, appErrors.DatabaseError("Failed to load user").WithError(err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.InternalError("Failed to secure password").WithError(err)
	}

	user = &models.User{
		FirstName:    utils.Sanitize(identity.GivenName),
		LastName:     utils.Sanitize(identity.FamilyName),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleUser,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if !hasPQCode(err, pqUniqueViolation) {
			return nil, appErrors.DatabaseError("Failed to create user").WithError(err)
		}

		// a concurrent request created the account first
		user, err = s.users.GetUserByEmail(ctx, email)
		if err != nil {
			return nil, appErrors.DatabaseError("Failed to load user").WithError(err)
		}
	} else {
		logger.Info("User provisioned from Google", slog.Int64("userId", user.ID))
	}

	return s.issue(user)
}

func (s *authService) Role(user *models.User) *models.AuthResponse {
	return &models.AuthResponse{Role: user.Role}
}

func (s *authService) AccountMenu(user *models.User) *models.AuthResponse {
	return &models.AuthResponse{Items: MenuItems(user.Role)}
}

func (s *authService) issue(user *models.User) (*models.AuthResponse, error) {

	now := time.Now()

	claims := &models.Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, appErrors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.AuthResponse{
		AccessToken: token,
		Items:       MenuItems(user.Role),
		Role:        user.Role,
	}, nil
}
