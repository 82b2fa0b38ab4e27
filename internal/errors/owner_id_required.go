package errors

import "net/http"

var ErrOwnerIDRequired = &Exception{
	Message:    "Owner id is required.",
	StatusCode: http.StatusBadRequest,
}
