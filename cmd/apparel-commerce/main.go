package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/aaravmahajanofficial/apparel-commerce-backend/docs"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/api"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/api/handlers"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/api/middleware"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/cache"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/config"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/health"
	repository "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/repositories"
	service "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/services"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/tracing"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/pkg/google"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/pkg/sendgrid"
)

// @title						Apparel Commerce API
// @version					1.0
// @description				Catalog, collection hierarchy, order and account endpoints of the apparel store.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tracing setup
	shutdownTracing, err := tracing.Setup(ctx, cfg.Otel)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	db, err := repository.New(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer redisClient.Close()

	repos := repository.NewRepositories(db.DB)
	rateLimiter := repository.NewRateLimitRepo(redisClient, cfg.RateConfig)
	principals := cache.NewPrincipalLookup(repos.Users, cache.NewRedisPrincipalCache(redisClient, &cfg.Cache))

	emailService := sendgrid.Disabled()
	if cfg.SendGrid.APIKey != "" {
		emailService = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		slog.Warn("SendGrid API key not set, order confirmations are disabled")
	}

	jwtKey := []byte(cfg.Security.JWTKey)

	authService := service.NewAuthService(repos.Users, rateLimiter, google.NewVerifier(cfg.Google.ClientID), jwtKey, cfg.Security.TokenTTL())
	productService := service.NewProductService(repos.Products, repos.Collections, repos.Transactor)
	collectionService := service.NewCollectionService(repos.Collections, repos.Products, repos.Transactor)
	orderService := service.NewOrderService(repos.Orders, repos.Addresses, repos.Products, repos.Transactor, emailService)
	addressService := service.NewAddressService(repos.Addresses, repos.Users, repos.Transactor)

	healthCheck, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	router := api.NewRouter(&api.Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Products:    handlers.NewProductHandler(productService),
		Collections: handlers.NewCollectionHandler(collectionService),
		Orders:      handlers.NewOrderHandler(orderService),
		Addresses:   handlers.NewAddressHandler(addressService),
		Health:      healthCheck.Handler(),
	}, middleware.NewAuthMiddleware(jwtKey, principals))

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup http server
	server := &http.Server{
		Addr:         cfg.HTTPServer.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.HTTPServer.Addr))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Failed to flush traces", slog.String("error", err.Error()))
	}
}
