package errors

import "net/http"

var ErrUsernameRequired = &Exception{
	Message:    "Username is required.",
	StatusCode: http.StatusBadRequest,
}
