package router

import (
	"encoding/json"
	"net/http"

	"estoque/internal/handler"
	"estoque/internal/middleware"
	"estoque/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	healthHandler *handler.HealthHandler,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Applied outermost first: Recovery -> RequestID -> Logging -> CORS
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, r, http.StatusNotFound, "ROUTE_NOT_FOUND", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", healthHandler.Live)
		api.Get("/ready", healthHandler.Ready)

		api.Route("/produtos", func(pr chi.Router) {
			pr.Get("/", productHandler.List)
			pr.Post("/", productHandler.Create)
			pr.Get("/{id}", productHandler.GetByID)
			pr.Put("/{id}", productHandler.Update)
			pr.Delete("/{id}", productHandler.Delete)
		})
	})

	return r
}

func writeStatus(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: middleware.RequestIDFromContext(r.Context()),
	})
}
