package handlers

import (
	"net/http"

	"github.com/spendtrack/backend/internal/constants"
	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/utils"
)

// UserHandler handles user profile requests
type UserHandler struct {
	userService UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// changePasswordRequest carries the user together with the password change
type changePasswordRequest struct {
	UserID          int64  `json:"user_id,string" validate:"required"`
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// GetUser handles GET /users/{userID}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, constants.ParamUserID)
	if err != nil {
		handleError(w, err)
		return
	}

	user, err := h.userService.GetUserByID(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, constants.StatusOK, user.Sanitize())
}

// UpdateUser handles PUT /users/{userID}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, constants.ParamUserID)
	if err != nil {
		handleError(w, err)
		return
	}

	var update models.UserUpdate
	if err := utils.DecodeAndValidate(r, &update); err != nil {
		handleError(w, err)
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), id, &update)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, constants.StatusOK, user.Sanitize())
}

// DeleteUser handles DELETE /users/{userID}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, constants.ParamUserID)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]string{"message": constants.MsgUserDeleted})
}

// ChangePassword handles PUT /users/change-password
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		handleError(w, err)
		return
	}

	change := &models.PasswordChange{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}

	if err := h.userService.ChangePassword(r.Context(), req.UserID, change); err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]string{"message": constants.MsgPasswordChanged})
}
