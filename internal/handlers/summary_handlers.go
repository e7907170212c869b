package handlers

import (
	"net/http"

	"github.com/spendtrack/backend/internal/constants"
	"github.com/spendtrack/backend/internal/utils"
)

// SummaryHandler handles spending summary requests
type SummaryHandler struct {
	summaryService SummaryService
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryService SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetSummary handles GET /summary/{userID}?month=YYYY-MM
func (h *SummaryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, constants.ParamUserID)
	if err != nil {
		handleError(w, err)
		return
	}

	month := r.URL.Query().Get(constants.QueryParamMonth)

	summary, err := h.summaryService.Summarize(r.Context(), userID, month)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, constants.StatusOK, summary)
}
