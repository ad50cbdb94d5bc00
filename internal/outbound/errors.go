package outbound

import (
	"errors"
	"fmt"
	"net/http"
)

// APICallError represents a failed call to the CV API
type APICallError struct {
	Path    string
	Status  int
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	switch {
	case e.Status != 0 && e.Cause != nil:
		return fmt.Sprintf("API call to %s failed with status %d: %s: %v", e.Path, e.Status, e.Message, e.Cause)
	case e.Status != 0:
		return fmt.Sprintf("API call to %s failed with status %d: %s", e.Path, e.Status, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("API call to %s failed: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("API call to %s failed: %s", e.Path, e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an
// APICallError or the request never got a response.
func StatusCode(err error) int {
	var apiErr *APICallError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsNotImplemented reports whether the server answered 501
func IsNotImplemented(err error) bool {
	return StatusCode(err) == http.StatusNotImplemented
}
