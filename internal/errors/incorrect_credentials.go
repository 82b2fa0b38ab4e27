package errors

import "net/http"

// Same message for unknown user and wrong password, so the endpoint
// cannot be used to enumerate usernames.
var ErrIncorrectCredentials = &Exception{
	Message:    "Incorrect username or password supplied.",
	StatusCode: http.StatusForbidden,
}
