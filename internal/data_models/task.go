package dto

import (
	model "task-tracker.com/task-tracker/pkg/models"
)

// TimestampLayout is the fixed textual form task timestamps are rendered
// in across the API.
const TimestampLayout = "02-01-2006 15:04:05"

// DateLayout is the form of created_from/created_to query parameters.
const DateLayout = "2006-01-02"

type CreateTaskRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Status      string `json:"status" form:"status"`
}

type CreateTaskResponse struct {
	UUID string `json:"uuid"`
}

// UpdateTaskRequest mirrors the editable whitelist. A nil field was
// absent from the request body.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// TaskListItem is the list projection of a task: the internal id and the
// description are never serialized here.
type TaskListItem struct {
	UUID        string `json:"uuid"`
	Title       string `json:"title"`
	Created     string `json:"created"`
	LastUpdated string `json:"last_updated"`
	Status      string `json:"status"`
}

func NewTaskListItem(task model.Task) TaskListItem {
	return TaskListItem{
		UUID:        task.UUID,
		Title:       task.Title,
		Created:     task.Created.Format(TimestampLayout),
		LastUpdated: task.LastUpdated.Format(TimestampLayout),
		Status:      string(task.Status),
	}
}

type PaginatedTaskList struct {
	Count    int            `json:"count"`
	Next     *string        `json:"next"`
	Previous *string        `json:"previous"`
	Results  []TaskListItem `json:"results"`
}
