// Package rest wires the chi router for the HTTP API.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"freshtrack-backend/application/services"
	"freshtrack-backend/interfaces/http/rest/handlers"
	"freshtrack-backend/interfaces/http/rest/middleware"
	"freshtrack-backend/pkg/auth"
)

// Router creates and configures the HTTP router
type Router struct {
	authService      *services.AuthService
	inventoryService *services.InventoryService
	tokens           *auth.TokenService
	enableCORS       bool
	logger           *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	authService *services.AuthService,
	inventoryService *services.InventoryService,
	tokens *auth.TokenService,
	enableCORS bool,
	logger *zap.Logger,
) *Router {
	return &Router{
		authService:      authService,
		inventoryService: inventoryService,
		tokens:           tokens,
		enableCORS:       enableCORS,
		logger:           logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	// CORS configuration
	if rt.enableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)

	// Public auth endpoints
	authHandler := handlers.NewAuthHandler(rt.authService, rt.logger)
	router.Post("/register", authHandler.Register)
	router.Post("/login", authHandler.Login)

	// Authenticated endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.tokens))

		itemHandler := handlers.NewItemHandler(rt.inventoryService, rt.logger)
		r.Post("/items", itemHandler.AddItem)
		r.Get("/items", itemHandler.ListItems)
		r.Put("/items/{itemID}", itemHandler.UpdateItem)
		r.Delete("/items/{itemID}", itemHandler.DeleteItem)
		r.Get("/analytics", itemHandler.Analytics)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
