package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/api/middleware"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	service "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/services"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/utils"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authService service.AuthService
	validator   *validator.Validate
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService, validator: validator.New()}
}

// Signup godoc
//
//	@Summary		Register a new user
//	@Description	Creates a USER account and returns an access token with the account menu.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		models.SignupRequest	true	"Signup details"
//	@Success		200		{object}	models.AuthResponse		"Account created"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		409		{object}	response.ErrorResponse	"Email already in use"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/auth/signup [post]
func (h *AuthHandler) Signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.SignupRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid signup input")
			return
		}

		resp, err := h.authService.Signup(r.Context(), &req)
		if err != nil {
			logger.Warn("Signup failed", slog.String("email", req.Email), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

// Login godoc
//
//	@Summary		Log in with email and password
//	@Description	Returns an access token. Repeated failures for one email are rate limited.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest		true	"Login credentials"
//	@Success		200			{object}	models.AuthResponse		"Logged in"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		401			{object}	response.ErrorResponse	"Invalid credentials"
//	@Failure		429			{object}	response.ErrorResponse	"Too many login attempts"
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")
			return
		}

		resp, err := h.authService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("Login failed", slog.String("email", req.Email), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User logged in", slog.String("email", req.Email))
		response.Success(w, http.StatusOK, resp)
	}
}

// GoogleLogin godoc
//
//	@Summary		Log in with a Google ID token
//	@Description	Verifies the token and signs the user in, creating the account on first use.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			token	body		models.GoogleAuthRequest	true	"Google ID token"
//	@Success		200		{object}	models.AuthResponse			"Logged in"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Invalid Google token"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/auth/google-login [post]
func (h *AuthHandler) GoogleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.GoogleAuthRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid Google login input")
			return
		}

		resp, err := h.authService.GoogleLogin(r.Context(), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

// Role godoc
//
//	@Summary	Role of the current user
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	models.AuthResponse		"Role"
//	@Failure	403	{object}	response.ErrorResponse	"Authentication required"
//	@Security	BearerAuth
//	@Router		/auth/role [get]
func (h *AuthHandler) Role() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		user, _, ok := currentUser(w, r)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, h.authService.Role(user))
	}
}

// AccountMenu godoc
//
//	@Summary	Account menu entries for the current user
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	models.AuthResponse		"Menu items"
//	@Failure	403	{object}	response.ErrorResponse	"Authentication required"
//	@Security	BearerAuth
//	@Router		/auth/account-menu [get]
func (h *AuthHandler) AccountMenu() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		user, _, ok := currentUser(w, r)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, h.authService.AccountMenu(user))
	}
}
