package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/pkg/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// TaskFilters narrows a ListForOwner query. A zero-value field means the
// filter is not applied.
type TaskFilters struct {
	Title       string
	Status      model.TaskStatus
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

func (r *TaskRepository) CreateTask(ctx context.Context, ownerID uint, title, description string, status model.TaskStatus) (*model.Task, error) {
	now := time.Now().UTC()
	task := &model.Task{
		UUID:        uuid.NewString(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Status:      status,
		Created:     now,
		LastUpdated: now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByUUID(ctx context.Context, taskUUID string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "uuid = ?", taskUUID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// ListForOwner returns the owner's tasks, most recently created first.
// Rows created within the same timestamp fall back to insertion order,
// newest first.
func (r *TaskRepository) ListForOwner(ctx context.Context, ownerID uint, filters *TaskFilters) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)

	if filters != nil {
		if filters.Title != "" {
			query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filters.Title)+"%")
		}
		if filters.Status != "" {
			query = query.Where("status = ?", filters.Status)
		}
		if filters.CreatedFrom != nil {
			query = query.Where("date(created) >= date(?)", filters.CreatedFrom)
		}
		if filters.CreatedTo != nil {
			query = query.Where("date(created) <= date(?)", filters.CreatedTo)
		}
	}

	var tasks []model.Task
	err := query.Order("created desc, id desc").Find(&tasks).Error
	return tasks, err
}

// Update persists the editable fields plus a refreshed last_updated
// timestamp. Identifiers, ownership and the created timestamp are never
// written back.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	task.LastUpdated = time.Now().UTC()

	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"title":        task.Title,
			"description":  task.Description,
			"status":       task.Status,
			"last_updated": task.LastUpdated,
		}).Error
}

func (r *TaskRepository) Delete(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Delete(task).Error
}
