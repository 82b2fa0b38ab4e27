package errors

import (
	"errors"
	"net/http"
)

type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// Payload is the value serialized under the "error" key of an error
// response: a field detail map for validation failures, a plain message
// otherwise.
func Payload(err error) interface{} {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Fields
	}

	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	return "internal server error"
}
