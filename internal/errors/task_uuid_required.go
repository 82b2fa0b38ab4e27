package errors

import "net/http"

var ErrTaskUUIDRequired = &Exception{
	Message:    "Task uuid is required.",
	StatusCode: http.StatusBadRequest,
}
