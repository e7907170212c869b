package middleware

import (
	"net/http"
	"strconv"

	"github.com/spendtrack/backend/internal/config"
)

// CORS returns a middleware that applies the configured CORS policy.
// An empty origin list allows any origin, which is the development default.
func CORS(settings config.CORSSettings) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(settings.AllowedOrigins))
	for _, origin := range settings.AllowedOrigins {
		allowed[origin] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin != "" {
				switch {
				case len(allowed) == 0 || allowed["*"]:
					w.Header().Set("Access-Control-Allow-Origin", "*")
				case allowed[origin]:
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Vary", "Origin")
				}

				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
				w.Header().Set("Access-Control-Allow-Credentials", strconv.FormatBool(settings.AllowCredentials))
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
