package api

import (
	"net/http"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/api/handlers"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/api/middleware"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/metrics"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Products    *handlers.ProductHandler
	Collections *handlers.CollectionHandler
	Orders      *handlers.OrderHandler
	Addresses   *handlers.AddressHandler
	Health      http.Handler
}

// NewRouter mounts every endpoint. Catalog reads and the auth endpoints are
// public, account and order endpoints need a signed-in user, and catalog writes
// plus the whole collection tree are admin only.
func NewRouter(h *Handlers, auth *middleware.AuthMiddleware) http.Handler {

	r := chi.NewRouter()

	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.Logging)
	r.Use(metrics.Middleware)

	adminOnly := middleware.RequireRole(models.RoleAdmin)

	if h.Health != nil {
		r.Method(http.MethodGet, "/health", h.Health)
	}
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Auth.Signup())
		r.Post("/login", h.Auth.Login())
		r.Post("/google-login", h.Auth.GoogleLogin())

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Get("/role", h.Auth.Role())
			r.Get("/account-menu", h.Auth.AccountMenu())
		})
	})

	r.Route("/product", func(r chi.Router) {
		r.Get("/list", h.Products.ListProducts())
		r.Get("/show/{id}", h.Products.GetProduct())

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate, adminOnly)
			r.Post("/create", h.Products.CreateProduct())
			r.Put("/edit/{id}", h.Products.UpdateProduct())
			r.Delete("/delete/{id}", h.Products.DeleteProduct())
		})
	})

	r.Route("/collection", func(r chi.Router) {
		r.Use(auth.Authenticate, adminOnly)

		r.Get("/list", h.Collections.ListCollections())
		r.Get("/show/{id}", h.Collections.GetCollection())
		r.Post("/create", h.Collections.CreateCollection())
		r.Put("/edit/{id}", h.Collections.UpdateCollection())
		r.Delete("/delete/{id}", h.Collections.DeleteCollection())

		r.Get("/{collectionId}/products", h.Collections.ListCollectionProducts())
		r.Post("/{collectionId}/products/{productId}", h.Collections.AddProduct())
		r.Delete("/{collectionId}/products/{productId}", h.Collections.RemoveProduct())

		r.Get("/{parentId}/subcollections", h.Collections.ListSubcollections())
		r.Post("/{parentId}/subcollections/{subcollectionId}", h.Collections.AddSubcollection())
		r.Delete("/{parentId}/subcollections/{subcollectionId}", h.Collections.RemoveSubcollection())
	})

	r.Route("/order", func(r chi.Router) {
		r.Use(auth.Authenticate)

		r.Get("/list", h.Orders.ListOrders())
		r.Get("/show/{id}", h.Orders.GetOrder())
		r.Put("/edit/{id}", h.Orders.UpdateOrder())
		r.Delete("/delete/{id}", h.Orders.DeleteOrder())

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Post("/create", h.Orders.CreateOrder())
			r.Get("/list/{userId}", h.Orders.ListUserOrders())
		})
	})

	r.Route("/account/address", func(r chi.Router) {
		r.Use(auth.Authenticate)

		r.Get("/list", h.Addresses.ListAddresses())
		r.Post("/create", h.Addresses.CreateAddress())
		r.Put("/edit/{id}", h.Addresses.UpdateAddress())
		r.Delete("/delete/{id}", h.Addresses.DeleteAddress())
	})

	return otelhttp.NewHandler(r, "http.server",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}
