package handler

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"

	"go-multidb-api/internal/service"
	"go-multidb-api/pkg/apierror"
)

type sweepRequest struct {
	AdminKey string `json:"adminKey"`
}

// AdminHandler exposes the password migration sweep. The route is gated by
// a shared admin key compared in constant time; an empty configured key
// keeps the route closed rather than open.
type AdminHandler struct {
	service  *service.AuthService
	adminKey string
}

func NewAdminHandler(service *service.AuthService, adminKey string) *AdminHandler {
	return &AdminHandler{service: service, adminKey: adminKey}
}

func (h *AdminHandler) HashPasswords(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload sweepRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("Invalid JSON body"))
		return
	}

	if !h.keyMatches(payload.AdminKey) {
		writeError(w, apierror.Forbidden("Unauthorized"))
		return
	}

	result, err := h.service.MigratePasswords(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK,
		fmt.Sprintf("Successfully hashed %d passwords", result.Updated), result)
}

func (h *AdminHandler) keyMatches(candidate string) bool {
	if h.adminKey == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(candidate), []byte(h.adminKey)) == 1
}
