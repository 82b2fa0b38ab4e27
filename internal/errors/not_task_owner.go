package errors

import "net/http"

var ErrNotTaskOwner = &Exception{
	Message:    "User is not task owner.",
	StatusCode: http.StatusForbidden,
}
