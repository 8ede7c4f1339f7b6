package admin

import (
	"net/http"

	"sample-registry/internal/api"
	"sample-registry/internal/database"
	"sample-registry/internal/store"

	"github.com/labstack/echo/v4"
)

var listUsers = store.ListUsers

// AllUsersHandler lists every registered user.
// @Summary     List all users
// @Tags        admin
// @Produce     json
// @Success     200 {object} api.UsersResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/allusers [get]
func AllUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewUsersResponse(users))
	}
}
