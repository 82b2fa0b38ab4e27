package http

import (
	"strconv"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

const maxPageSize = 100

// paginateTaskList slices an already-ordered task list into the
// page/page_size envelope. Ordering is the service's contract, so pages
// stay stable across requests.
func paginateTaskList(c echo.Context, defaultPageSize int, items []dto.TaskListItem) (*dto.PaginatedTaskList, error) {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return nil, apperrors.ErrInvalidPage
		}
		page = parsed
	}

	pageSize := defaultPageSize
	if raw := c.QueryParam("page_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return nil, apperrors.ErrInvalidPage
		}
		if parsed > maxPageSize {
			parsed = maxPageSize
		}
		pageSize = parsed
	}

	start := (page - 1) * pageSize
	if start >= len(items) && page != 1 {
		return nil, apperrors.ErrInvalidPage
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	if start > len(items) {
		start = len(items)
	}

	var next, previous *string
	if end < len(items) {
		next = pageURL(c, page+1)
	}
	if page > 1 {
		previous = pageURL(c, page-1)
	}

	return &dto.PaginatedTaskList{
		Count:    len(items),
		Next:     next,
		Previous: previous,
		Results:  items[start:end],
	}, nil
}

func pageURL(c echo.Context, page int) *string {
	u := *c.Request().URL
	query := u.Query()
	query.Set("page", strconv.Itoa(page))
	u.RawQuery = query.Encode()
	s := u.String()
	return &s
}
