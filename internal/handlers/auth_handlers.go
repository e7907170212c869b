package handlers

import (
	"net/http"

	"github.com/spendtrack/backend/internal/constants"
	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/utils"
)

// AuthHandler handles registration and login requests
type AuthHandler struct {
	userService UserService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var reg models.UserRegistration
	if err := utils.DecodeAndValidate(r, &reg); err != nil {
		handleError(w, err)
		return
	}

	user, err := h.userService.Register(r.Context(), &reg)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, constants.StatusCreated, user.Sanitize())
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.UserCredentials
	if err := utils.DecodeAndValidate(r, &creds); err != nil {
		handleError(w, err)
		return
	}

	user, err := h.userService.Authenticate(r.Context(), &creds)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, constants.StatusOK, user.Sanitize())
}
