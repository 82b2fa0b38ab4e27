package errors

import "net/http"

var ErrUserIDRequired = &Exception{
	Message:    "User id is required.",
	StatusCode: http.StatusBadRequest,
}
