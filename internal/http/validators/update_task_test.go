package validators

import (
	"errors"
	"net/http"
	"testing"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func TestValidateUpdateTaskRequest_RejectsNonEditableField(t *testing.T) {
	bodies := []string{
		`{"id": 5, "title": "Test Update", "status": "to_do"}`,
		`{"uuid": "ea0ec33b-30e2-4601-9011-e35e1e2b5e0d", "title": "Test Update", "status": "to_do"}`,
		`{"owner_id": 2, "title": "Test Update", "status": "to_do"}`,
		`{"created": "01-01-2023 12:00:00", "title": "Test Update", "status": "to_do"}`,
	}

	for _, body := range bodies {
		var req dto.UpdateTaskRequest
		err := ValidateUpdateTaskRequest([]byte(body), &req)

		var validationErr *apperrors.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("body %s: expected a field error, got %v", body, err)
		}
		if apperrors.StatusCode(err) != http.StatusBadRequest {
			t.Errorf("body %s: expected status 400, got %d", body, apperrors.StatusCode(err))
		}
		for _, messages := range validationErr.Fields {
			if messages[0] != "This field is not editable." {
				t.Errorf("body %s: unexpected message %q", body, messages[0])
			}
		}
	}
}

func TestValidateUpdateTaskRequest_TitleAndStatusRequired(t *testing.T) {
	var req dto.UpdateTaskRequest
	err := ValidateUpdateTaskRequest([]byte(`{"description": "only"}`), &req)

	var validationErr *apperrors.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := validationErr.Fields["title"]; !ok {
		t.Errorf("expected field detail for title, got %v", validationErr.Fields)
	}
	if _, ok := validationErr.Fields["status"]; !ok {
		t.Errorf("expected field detail for status, got %v", validationErr.Fields)
	}
}

func TestValidateUpdateTaskRequest_AcceptsEditableFields(t *testing.T) {
	var req dto.UpdateTaskRequest
	body := `{"title": "Test Update", "description": "Test description", "status": "completed"}`

	if err := ValidateUpdateTaskRequest([]byte(body), &req); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if req.Title == nil || *req.Title != "Test Update" {
		t.Errorf("title not decoded: %+v", req)
	}
	if req.Description == nil || *req.Description != "Test description" {
		t.Errorf("description not decoded: %+v", req)
	}
	if req.Status == nil || *req.Status != "completed" {
		t.Errorf("status not decoded: %+v", req)
	}
}

func TestValidateUpdateTaskRequest_MalformedJSON(t *testing.T) {
	var req dto.UpdateTaskRequest
	err := ValidateUpdateTaskRequest([]byte(`{"title":`), &req)

	if !errors.Is(err, apperrors.ErrInvalidPayload) {
		t.Errorf("expected ErrInvalidPayload, got %v", err)
	}
}
