package errors

import "net/http"

// A missing task surfaces as a bad request rather than a 404, matching
// the behavior API clients already depend on.
var ErrTaskNotFound = &Exception{
	Message:    "Task matching query does not exist.",
	StatusCode: http.StatusBadRequest,
}
