package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Failure categories. Every error returned by Client wraps exactly one of
// these (or a *StatusError) inside an *APIError.
var (
	ErrTransport     = errors.New("backend unreachable")
	ErrMalformedBody = errors.New("malformed response body")
	ErrMissingFields = errors.New("response missing required fields")
)

// StatusError is a non-2xx answer from the backend
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.Code)
}

// APIError names the backend operation that failed
type APIError struct {
	Op  string
	Err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &APIError{Op: op, Err: err}
}

// IsNotFound reports a 404 from the backend
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// IsBackendError reports whether err came from a backend call
func IsBackendError(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}

// Message is the text shown to a shopper for a failed backend call. All
// categories read the same way apart from the backend's own detail.
func Message(err error) string {
	var se *StatusError
	switch {
	case errors.As(err, &se) && se.Detail != "":
		return se.Detail
	case errors.As(err, &se):
		return fmt.Sprintf("Request failed with status %d", se.Code)
	case errors.Is(err, ErrTransport):
		return "Something went wrong. Please try again."
	case errors.Is(err, ErrMalformedBody), errors.Is(err, ErrMissingFields):
		return "Received an unexpected response from the server."
	default:
		return "Something went wrong. Please try again."
	}
}

// detailMessage extracts FastAPI's "detail", which is either a string or a
// list of validation errors with "msg" fields
func detailMessage(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
