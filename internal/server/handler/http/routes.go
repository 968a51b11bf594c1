// Package http provides HTTP routing and middleware configuration
// for the bookstore service.
package http

import (
	"net/http"

	"github.com/avoronin/bookstore/internal/middleware"
	"github.com/avoronin/bookstore/internal/models"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves
// the bookstore API. It applies JSON content-type enforcement and
// request logging, and mounts the auth, catalog, order, stats, and
// health endpoints.
//
// Routes:
//
//	POST /api/auth/register        → authHandler.Register
//	POST /api/auth/login           → authHandler.Login
//	POST /api/auth/admin           → authHandler.Admin
//	GET  /api/books                → bookHandler.GetAll
//	GET  /api/books/{id}           → bookHandler.GetByID
//	POST /api/books                → bookHandler.Create   (admin)
//	PUT  /api/books/{id}           → bookHandler.Update   (admin)
//	DELETE /api/books/{id}         → bookHandler.Delete   (admin)
//	POST /api/orders               → orderHandler.Create  (authenticated)
//	GET  /api/orders/email/{email} → orderHandler.GetByEmail (authenticated)
//	GET  /api/orders               → orderHandler.GetAll  (admin)
//	GET  /api/admin                → statsHandler.Stats   (admin)
//	GET  /health                   → healthHandler.Health
//
// Protected groups chain BearerAuth (verifies the session token and stores
// its claims in the request context) and, for admin routes, RequireRole.
func NewRouter(
	authHandler *AuthHandler,
	bookHandler *BookHandler,
	orderHandler *OrderHandler,
	statsHandler *StatsHandler,
	healthHandler *HealthHandler,
	verifier middleware.TokenVerifier,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Get("/health", healthHandler.Health)

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		// Public auth endpoints
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/admin", authHandler.Admin)
		})

		r.Route("/books", func(r chi.Router) {
			// Public catalog reads
			r.Get("/", bookHandler.GetAll)
			r.Get("/{id}", bookHandler.GetByID)

			// Catalog management: requires an admin token
			r.Group(func(r chi.Router) {
				r.Use(middleware.BearerAuth(verifier))
				r.Use(middleware.RequireRole(models.RoleAdmin))
				r.Post("/", bookHandler.Create)
				r.Put("/{id}", bookHandler.Update)
				r.Delete("/{id}", bookHandler.Delete)
			})
		})

		r.Route("/orders", func(r chi.Router) {
			// All order routes require a valid token
			r.Use(middleware.BearerAuth(verifier))
			r.Post("/", orderHandler.Create)
			r.Get("/email/{email}", orderHandler.GetByEmail)

			// Full order listing is admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(models.RoleAdmin))
				r.Get("/", orderHandler.GetAll)
			})
		})

		// Admin dashboard stats
		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(verifier))
			r.Use(middleware.RequireRole(models.RoleAdmin))
			r.Get("/admin", statsHandler.Stats)
		})
	})

	return r
}
