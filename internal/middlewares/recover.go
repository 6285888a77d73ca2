package middlewares

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// FallbackErrorResponse is the body of the global error handler. Unlike
// route-level errors it uses a "message" key.
type FallbackErrorResponse struct {
	Message string `json:"message"`
}

// RecoverMiddleware returns a middleware that converts panics escaping a
// handler into a 500 JSON response. Route handlers deal with their own
// failures; this is the safety net for truly unhandled errors.
func RecoverMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Errorw("panic recovered",
						"method", r.Method,
						"uri", r.RequestURI,
						"panic", rec,
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(FallbackErrorResponse{
						Message: "Internal Server Error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
