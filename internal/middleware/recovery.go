package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/spendtrack/backend/internal/constants"
	"github.com/spendtrack/backend/internal/utils"
)

// Recovery recovers from panics in handlers and converts them into
// 500 responses instead of dropping the connection.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("request_id", GetRequestID(r.Context())).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("Recovered from panic in handler")

				utils.Error(
					w,
					constants.StatusInternalServerError,
					constants.CodeInternalError,
					constants.MsgInternalServerError,
					nil,
				)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
