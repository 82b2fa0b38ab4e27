package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	"task-tracker.com/task-tracker/internal/http/validators"
	"task-tracker.com/task-tracker/internal/services"
	model "task-tracker.com/task-tracker/pkg/models"
)

type Handler struct {
	taskService *services.TaskService
	authService *services.AuthService
	pageSize    int
}

func NewHandler(taskService *services.TaskService, authService *services.AuthService, pageSize int) *Handler {
	return &Handler{
		taskService: taskService,
		authService: authService,
		pageSize:    pageSize,
	}
}

func (h *Handler) AuthToken(c echo.Context) error {
	var req dto.AuthTokenRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrInvalidPayload)
	}
	if err := validators.ValidateAuthTokenRequest(&req); err != nil {
		return respondError(c, err)
	}

	token, err := h.authService.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AuthTokenResponse{Token: token})
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrInvalidPayload)
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return respondError(c, err)
	}

	task, err := h.taskService.CreateTask(
		c.Request().Context(),
		ownerID(c),
		req.Title,
		req.Description,
		model.TaskStatus(req.Status),
	)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateTaskResponse{UUID: task.UUID})
}

func (h *Handler) ListTasks(c echo.Context) error {
	filters, err := validators.ParseTaskFilters(c.QueryParams())
	if err != nil {
		return respondError(c, err)
	}

	tasks, err := h.taskService.ListTasksForOwner(c.Request().Context(), ownerID(c), filters)
	if err != nil {
		return respondError(c, err)
	}

	items := make([]dto.TaskListItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, dto.NewTaskListItem(task))
	}

	page, err := paginateTaskList(c, h.pageSize, items)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, page)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return respondError(c, apperrors.ErrInvalidPayload)
	}

	var req dto.UpdateTaskRequest
	if err := validators.ValidateUpdateTaskRequest(body, &req); err != nil {
		return respondError(c, err)
	}

	patch := services.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := model.TaskStatus(*req.Status)
		patch.Status = &status
	}

	if err := h.taskService.UpdateTask(c.Request().Context(), c.Param("uuid"), ownerID(c), patch); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	if err := h.taskService.DeleteTask(c.Request().Context(), c.Param("uuid"), ownerID(c)); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func ownerID(c echo.Context) uint {
	id, _ := c.Get(middleware.OwnerIDKey).(uint)
	return id
}

func respondError(c echo.Context, err error) error {
	return c.JSON(apperrors.StatusCode(err), echo.Map{"error": apperrors.Payload(err)})
}
