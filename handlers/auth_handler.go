package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/tournament-day/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login godoc
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginRequest true "Admin password"
// @Success 200 {object} map[string]interface{} "token and expires_at"
// @Failure 401 {object} map[string]string "Wrong password"
// @Failure 503 {object} map[string]string "Login not configured"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Password == "" {
		badRequestResponse(w, r, errors.New("password is required"))
		return
	}

	token, expiresAt, err := h.authService.Login(r.Context(), input.Password)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"token": token, "expires_at": expiresAt}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
