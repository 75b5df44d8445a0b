package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventmanager/internal/delivery/http/controllers"
	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("POST /events", eventController.Submit)
	mux.HandleFunc("GET /events", eventController.ListAll)
	mux.HandleFunc("GET /event/{id}", eventController.GetByID)
	mux.HandleFunc("DELETE /event/{id}", eventController.DeleteByID)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router in recovery, request logging and CORS, outermost first.
func NewHandler(logger *slog.Logger, allowedOrigins []string, router http.Handler) http.Handler {
	h := middleware.CORS(allowedOrigins, router)
	h = middleware.LoggingMiddleware(logger, h)
	return middleware.Recovery(logger, h)
}
