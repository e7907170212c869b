package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/spendtrack/backend/internal/utils"
)

// handleError converts any error into a standardized error response
func handleError(w http.ResponseWriter, err error) {
	utils.ErrorFromAppError(w, utils.ParseError(err))
}

// parseIDParam extracts a numeric identifier from a URL path parameter
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, utils.NewValidationError(name, "Must be a positive numeric identifier")
	}
	return id, nil
}
