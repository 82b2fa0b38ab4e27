package validators

import (
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func ValidateAuthTokenRequest(r *dto.AuthTokenRequest) error {
	fields := map[string][]string{}

	if r.Username == "" {
		fields["username"] = append(fields["username"], "This field is required.")
	}
	if r.Password == "" {
		fields["password"] = append(fields["password"], "This field is required.")
	}

	if len(fields) > 0 {
		return &apperrors.ValidationError{Fields: fields}
	}
	return nil
}
