package validators

import (
	"encoding/json"
	"sort"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

// editableTaskFields is the fixed whitelist of attributes an update may
// change. Identifiers and timestamps are deliberately absent.
var editableTaskFields = map[string]struct{}{
	"title":       {},
	"description": {},
	"status":      {},
}

// ValidateUpdateTaskRequest decodes an update body, rejecting any key
// outside the editable whitelist before the request reaches the service.
func ValidateUpdateTaskRequest(body []byte, r *dto.UpdateTaskRequest) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return apperrors.ErrInvalidPayload
	}

	var unknown []string
	for key := range raw {
		if _, ok := editableTaskFields[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return apperrors.FieldNotEditable(unknown[0])
	}

	if err := json.Unmarshal(body, r); err != nil {
		return apperrors.ErrInvalidPayload
	}

	fields := map[string][]string{}
	if r.Title == nil || *r.Title == "" {
		fields["title"] = append(fields["title"], "This field is required.")
	}
	if r.Status == nil || *r.Status == "" {
		fields["status"] = append(fields["status"], "This field is required.")
	}

	if len(fields) > 0 {
		return &apperrors.ValidationError{Fields: fields}
	}
	return nil
}
