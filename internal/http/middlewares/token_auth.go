package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	repository "task-tracker.com/task-tracker/internal/repositories"
)

// OwnerIDKey is where the authenticated owner's id is stored on the echo
// context.
const OwnerIDKey = "owner_id"

const tokenPrefix = "Token "

// TokenAuth resolves an "Authorization: Token <key>" header to an owner
// id before any task handler runs.
func TokenAuth(users *repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, tokenPrefix) {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Authentication credentials were not provided.",
				})
			}

			key := strings.TrimSpace(strings.TrimPrefix(header, tokenPrefix))
			token, err := users.FindToken(c.Request().Context(), key)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Invalid token.",
				})
			}

			c.Set(OwnerIDKey, token.UserID)
			return next(c)
		}
	}
}
