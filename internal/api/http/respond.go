package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"rentalhq-backend/internal/logger"
	"rentalhq-backend/internal/repository"
	"rentalhq-backend/internal/security"
	"rentalhq-backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps the service error taxonomy onto HTTP statuses:
// validation 400, unknown id 404, out of stock 409, bad credentials or
// OTP 401, anything else 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrOutOfStock):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidOTP),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// respondWith writes the mutated entity, or the whole collection set when
// the client asked for ?refresh=1 to update its data context in the same
// round trip.
func respondWith(w http.ResponseWriter, r *http.Request, data service.DataService, status int, payload any) {
	if r.URL.Query().Get("refresh") == "1" {
		doc, err := data.All(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, status, doc)
		return
	}
	writeJSON(w, status, payload)
}

func wrapValidation(err error) error {
	return fmt.Errorf("%w: %v", service.ErrValidation, err)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
