package model

import (
	"fmt"
	"strings"
	"time"

	apperrors "task-tracker.com/task-tracker/internal/errors"
)

type TaskStatus string

const (
	StatusToDo       TaskStatus = "to_do"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusStandBy    TaskStatus = "stand_by"
)

const TitleMaxLength = 100

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusCompleted, StatusStandBy:
		return true
	}
	return false
}

// Task is owned by exactly one user. ID is internal only; UUID is the
// identifier exposed across the API boundary.
type Task struct {
	ID          uint       `gorm:"primaryKey" json:"-"`
	UUID        string     `gorm:"uniqueIndex;size:36;not null" json:"uuid"`
	OwnerID     uint       `gorm:"index;not null" json:"-"`
	Title       string     `gorm:"size:100;not null" json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'to_do'" json:"status"`
	Created     time.Time  `json:"created"`
	LastUpdated time.Time  `json:"last_updated"`
}

// Validate checks the field constraints shared by insert and update.
func (t *Task) Validate() error {
	fields := map[string][]string{}

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = append(fields["title"], "This field may not be blank.")
	}
	if len([]rune(t.Title)) > TitleMaxLength {
		fields["title"] = append(fields["title"],
			fmt.Sprintf("Ensure this field has no more than %d characters.", TitleMaxLength))
	}
	if !t.Status.Valid() {
		fields["status"] = append(fields["status"],
			fmt.Sprintf("%q is not a valid choice.", string(t.Status)))
	}

	if len(fields) > 0 {
		return &apperrors.ValidationError{Fields: fields}
	}
	return nil
}
