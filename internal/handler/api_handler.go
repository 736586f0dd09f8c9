package handler

import "net/http"

// APIHandler answers GET /api with a service description and endpoint
// listing.
type APIHandler struct{}

func NewAPIHandler() *APIHandler {
	return &APIHandler{}
}

func (h *APIHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "PostgreSQL API Server - Multi Database (JWT Secured)",
		"status":   "running",
		"security": "JWT authentication with 1 hour expiration",
		"databases": map[string]string{
			"users":    "connected",
			"products": "connected",
		},
		"endpoints": map[string]string{
			"home":          "/",
			"api":           "/api",
			"allUsers":      "GET /api/users",
			"userById":      "GET /api/users/{id}",
			"updateUser":    "PUT /api/users/{id}",
			"deleteUser":    "DELETE /api/users/{id}",
			"allProducts":   "GET /api/products",
			"productById":   "GET /api/products/{id}",
			"createProduct": "POST /api/products",
			"updateProduct": "PUT /api/products/{id}",
			"deleteProduct": "DELETE /api/products/{id}",
			"login":         "POST /api/login",
			"register":      "POST /api/register",
			"verifyToken":   "GET /api/verify-token",
		},
	})
}
