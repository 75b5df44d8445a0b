package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/delivery/respond"
)

// Recovery turns a panic in next into a logged 500 JSON error.
func Recovery(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.ErrorContext(r.Context(), "panic",
				"method", r.Method,
				"path", r.URL.Path,
				"panic", v,
				"stack", string(debug.Stack()),
			)
			helpers.WriteJSONError(w, http.StatusInternalServerError, respond.ErrCodeInternalError, "Internal server error.")
		}()
		next.ServeHTTP(w, r)
	})
}
