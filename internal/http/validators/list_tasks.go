package validators

import (
	"fmt"
	"net/url"
	"time"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	repository "task-tracker.com/task-tracker/internal/repositories"
	model "task-tracker.com/task-tracker/pkg/models"
)

// ParseTaskFilters builds the list filters from query parameters.
// Unrecognized parameters are ignored; recognized ones with bad values
// are rejected with field detail.
func ParseTaskFilters(params url.Values) (*repository.TaskFilters, error) {
	filters := &repository.TaskFilters{}
	fields := map[string][]string{}

	filters.Title = params.Get("title")

	if status := params.Get("status"); status != "" {
		if !model.TaskStatus(status).Valid() {
			fields["status"] = append(fields["status"],
				fmt.Sprintf("%q is not a valid choice.", status))
		} else {
			filters.Status = model.TaskStatus(status)
		}
	}

	if from := params.Get("created_from"); from != "" {
		t, err := time.Parse(dto.DateLayout, from)
		if err != nil {
			fields["created_from"] = append(fields["created_from"], "Enter a valid date.")
		} else {
			filters.CreatedFrom = &t
		}
	}

	if to := params.Get("created_to"); to != "" {
		t, err := time.Parse(dto.DateLayout, to)
		if err != nil {
			fields["created_to"] = append(fields["created_to"], "Enter a valid date.")
		} else {
			filters.CreatedTo = &t
		}
	}

	if len(fields) > 0 {
		return nil, &apperrors.ValidationError{Fields: fields}
	}
	return filters, nil
}
