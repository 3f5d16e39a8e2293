package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/saifFast/anaya-ecommerce-website/internal/service"
	"github.com/saifFast/anaya-ecommerce-website/internal/store"
)

// ErrorResponse is the error body the front end expects: message always,
// error detail only when there is one to show.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message, detail string) {
	respondJSON(w, status, ErrorResponse{
		Message: message,
		Error:   detail,
	})
}

// handleDomainError converts store and service errors to HTTP status codes.
// Anything unrecognized is logged and surfaced as a generic 500.
func handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrProductNotFound),
		errors.Is(err, store.ErrCategoryNotFound):
		respondError(w, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, store.ErrNameRequired),
		errors.Is(err, store.ErrNegativePrice),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrNilCustomer):
		respondError(w, http.StatusBadRequest, "validation failed", err.Error())
	default:
		log.Printf("request %s: unhandled error: %v", getRequestID(r.Context()), err)
		respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}
