package services

import (
	"context"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	repository "task-tracker.com/task-tracker/internal/repositories"
	model "task-tracker.com/task-tracker/pkg/models"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// TaskPatch is the full set of fields an update may change. Identifiers
// and timestamps are not representable here, so they cannot be smuggled
// through a patch. A nil field is left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *model.TaskStatus
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID uint, title, description string, status model.TaskStatus) (*model.Task, error) {
	if ownerID == 0 {
		return nil, apperrors.ErrOwnerIDRequired
	}

	if status == "" {
		status = model.StatusToDo
	}

	return s.repo.CreateTask(ctx, ownerID, title, description, status)
}

// ListTasksForOwner returns only the owner's rows, regardless of the
// filter combination.
func (s *TaskService) ListTasksForOwner(ctx context.Context, ownerID uint, filters *repository.TaskFilters) ([]model.Task, error) {
	if ownerID == 0 {
		return nil, apperrors.ErrUserIDRequired
	}

	return s.repo.ListForOwner(ctx, ownerID, filters)
}

func (s *TaskService) UpdateTask(ctx context.Context, taskUUID string, ownerID uint, patch TaskPatch) error {
	task, err := s.getTaskForOwner(ctx, taskUUID, ownerID)
	if err != nil {
		return err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}

	return s.repo.Update(ctx, task)
}

func (s *TaskService) DeleteTask(ctx context.Context, taskUUID string, ownerID uint) error {
	task, err := s.getTaskForOwner(ctx, taskUUID, ownerID)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, task)
}

// getTaskForOwner resolves a task uuid on behalf of an owner. A missing
// uuid and someone else's task fail differently on purpose: callers can
// tell "does not exist" from "exists but is not yours".
func (s *TaskService) getTaskForOwner(ctx context.Context, taskUUID string, ownerID uint) (*model.Task, error) {
	if taskUUID == "" {
		return nil, apperrors.ErrTaskUUIDRequired
	}
	if ownerID == 0 {
		return nil, apperrors.ErrOwnerIDRequired
	}

	task, err := s.repo.FindByUUID(ctx, taskUUID)
	if err != nil {
		return nil, err
	}

	if task.OwnerID != ownerID {
		return nil, apperrors.ErrNotTaskOwner
	}

	return task, nil
}
