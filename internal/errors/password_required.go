package errors

import "net/http"

var ErrPasswordRequired = &Exception{
	Message:    "Password is required.",
	StatusCode: http.StatusBadRequest,
}
