package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go-multidb-api/internal/model"
	"go-multidb-api/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, model.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// writeList is the envelope for collection endpoints, which also report the
// dataset name and the row count.
func writeList(w http.ResponseWriter, database string, count int, data any) {
	writeJSON(w, http.StatusOK, model.APIResponse{
		Success:  true,
		Database: database,
		Count:    &count,
		Data:     data,
	})
}

// writeError translates any failure into the error taxonomy. Store errors
// surface their text in details for diagnostics; credential material never
// reaches a response because it never enters an error value.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := &model.APIError{
		Code:    "INTERNAL_ERROR",
		Message: "Unexpected server error",
	}

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		body.Code = apiErr.Code
		body.Message = apiErr.Message
		body.Details = apiErr.Details
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "User not found"
	case errors.Is(err, model.ErrProductNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "Product not found"
	case errors.Is(err, model.ErrEmailTaken):
		status = http.StatusBadRequest
		body.Code = "EMAIL_TAKEN"
		body.Message = "Email already registered"
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "Invalid email or password"
	case errors.Is(err, model.ErrInvalidToken):
		status = http.StatusForbidden
		body.Code = "FORBIDDEN"
		body.Message = "Invalid or expired token"
	case errors.Is(err, model.ErrInvalidInput):
		status = http.StatusBadRequest
		body.Code = "BAD_REQUEST"
		body.Message = "Invalid input"
	default:
		body.Code = "STORE_ERROR"
		body.Message = "Database error"
		body.Details = err.Error()
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	writeJSON(w, status, model.APIResponse{
		Success: false,
		Error:   body,
	})
}
