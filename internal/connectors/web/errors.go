package web

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError represents a non-2xx response.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("web: unexpected status %d %s (URL: %s)",
		e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// IsNotFound checks if the error indicates the document does not exist.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsStatus checks if the error is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == code
	}
	return false
}
