package http

import (
	"github.com/labstack/echo/v4"

	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

func Register(e *echo.Echo, h *Handler, users *repository.UserRepository) {
	api := e.Group("/api/v1")

	api.POST("/auth/token/", h.AuthToken)

	tasks := api.Group("/tasks", middleware.TokenAuth(users))
	tasks.GET("/list/", h.ListTasks)
	tasks.POST("/create/", h.CreateTask)
	tasks.POST("/update/:uuid/", h.UpdateTask)
	tasks.DELETE("/delete/:uuid/", h.DeleteTask)
}
