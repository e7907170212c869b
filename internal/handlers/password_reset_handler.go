package handlers

import (
	"net/http"

	"github.com/spendtrack/backend/internal/constants"
	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/utils"
)

// PasswordResetHandler handles forgot-password and reset-password requests
type PasswordResetHandler struct {
	resetService PasswordResetService
}

// NewPasswordResetHandler creates a new PasswordResetHandler
func NewPasswordResetHandler(resetService PasswordResetService) *PasswordResetHandler {
	return &PasswordResetHandler{resetService: resetService}
}

// ForgotPassword handles POST /forgot-password.
// The response is the same whether or not the account exists.
func (h *PasswordResetHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		handleError(w, err)
		return
	}

	if err := h.resetService.RequestReset(r.Context(), req.Identifier); err != nil {
		utils.InternalServerError(w, err)
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]string{"message": constants.MsgResetRequested})
}

// ResetPassword handles POST /reset-password.
// All token failure causes collapse into one generic message so the
// response never reveals which check failed.
func (h *PasswordResetHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		handleError(w, err)
		return
	}

	if err := h.resetService.ConsumeReset(r.Context(), req.Token, req.NewPassword); err != nil {
		if utils.IsResetTokenError(err) {
			utils.Error(w, constants.StatusBadRequest, constants.CodeInvalidToken, constants.MsgInvalidResetToken, nil)
			return
		}
		handleError(w, err)
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]string{"message": constants.MsgPasswordChanged})
}
