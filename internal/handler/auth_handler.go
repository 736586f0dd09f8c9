package handler

import (
	"encoding/json"
	"net/http"

	"go-multidb-api/internal/middleware"
	"go-multidb-api/internal/model"
	"go-multidb-api/internal/service"
	"go-multidb-api/pkg/apierror"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("Invalid JSON body"))
		return
	}

	result, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.LoginResponse{
		Success:   true,
		Message:   "Login successful",
		User:      result.User,
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("Invalid JSON body"))
		return
	}

	result, err := h.service.Register(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.RegisterResponse{
		Success:          true,
		Message:          "Registration successful",
		User:             result.User,
		PasswordStrength: result.PasswordStrength,
	})
}

// VerifyToken runs behind the auth middleware; reaching it means the token
// already verified, so it just echoes the claims back.
func (h *AuthHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthorized("Access token required"))
		return
	}

	writeJSON(w, http.StatusOK, model.VerifyTokenResponse{
		Success: true,
		Message: "Token is valid",
		User:    *claims,
	})
}
