package validators

import (
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	fields := map[string][]string{}

	if r.Title == "" {
		fields["title"] = append(fields["title"], "This field is required.")
	}
	if r.Status == "" {
		fields["status"] = append(fields["status"], "This field is required.")
	}

	if len(fields) > 0 {
		return &apperrors.ValidationError{Fields: fields}
	}
	return nil
}
