package errors

import "net/http"

var ErrInvalidPage = &Exception{
	Message:    "Invalid page.",
	StatusCode: http.StatusBadRequest,
}
