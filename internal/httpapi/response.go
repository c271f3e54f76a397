package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/tair/wastesmart-storefront/internal/backend"
	cart "github.com/tair/wastesmart-storefront/internal/cart/domain"
	catalog "github.com/tair/wastesmart-storefront/internal/catalog/domain"
	session "github.com/tair/wastesmart-storefront/internal/session/domain"
	"github.com/tair/wastesmart-storefront/pkg/logger"
)

const genericFailure = "Something went wrong. Please try again."

// Response is the envelope of every JSON answer
type Response struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Error    string      `json:"error,omitempty"`
	Redirect string      `json:"redirect,omitempty"`
}

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func RespondOK(w http.ResponseWriter, data interface{}) {
	RespondJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

func RespondMessage(w http.ResponseWriter, status int, message string, data interface{}) {
	RespondJSON(w, status, Response{Success: true, Message: message, Data: data})
}

// RespondFail sends a failure with a message the browser can show as-is
func RespondFail(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, Response{Success: false, Error: message})
}

// RespondRedirect sends 303 with a Location and a JSON body naming it
func RespondRedirect(w http.ResponseWriter, location, message string) {
	w.Header().Set("Location", location)
	RespondJSON(w, http.StatusSeeOther, Response{Success: false, Error: message, Redirect: location})
}

// RespondError maps a use-case error onto a status and a user-facing message
func RespondError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, message := Classify(err)

	event := logger.Warn(r.Context())
	if status >= http.StatusInternalServerError {
		event = logger.Error(r.Context())
	}
	event.Err(err).Str("op", op).Int("status", status).Msg("Request failed")

	var corrupted *session.CorruptedError
	if errors.As(err, &corrupted) {
		RespondRedirect(w, corrupted.RedirectTo(), message)
		return
	}
	RespondFail(w, status, message)
}

// Classify picks the HTTP status and message for err
func Classify(err error) (int, string) {
	var corrupted *session.CorruptedError
	switch {
	case errors.As(err, &corrupted):
		return http.StatusSeeOther, "Your session data was invalid. Please log in again."
	case errors.Is(err, session.ErrUnauthenticated):
		return http.StatusUnauthorized, "Please log in to continue."
	case errors.Is(err, catalog.ErrNotOwner):
		return http.StatusForbidden, "You can only manage your own products."
	case errors.Is(err, session.ErrInvalidInput),
		errors.Is(err, catalog.ErrInvalidProduct),
		errors.Is(err, cart.ErrInvalidItem):
		return http.StatusBadRequest, userMessage(err)
	case errors.Is(err, cart.ErrEmptyCart):
		return http.StatusBadRequest, "Your cart is empty."
	case backend.IsNotFound(err):
		return http.StatusNotFound, backend.Message(err)
	case backend.IsBackendError(err),
		errors.Is(err, backend.ErrMissingFields),
		errors.Is(err, backend.ErrMalformedBody),
		errors.Is(err, backend.ErrTransport):
		return http.StatusBadGateway, backend.Message(err)
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, genericFailure
	default:
		return http.StatusInternalServerError, genericFailure
	}
}

// userMessage strips the sentinel prefix from a validation error
func userMessage(err error) string {
	for _, sentinel := range []error{session.ErrInvalidInput, catalog.ErrInvalidProduct, cart.ErrInvalidItem} {
		if msg, ok := strings.CutPrefix(err.Error(), sentinel.Error()+": "); ok {
			return msg
		}
	}
	return err.Error()
}
