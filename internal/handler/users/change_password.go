package users

import (
	"net/http"

	"sample-registry/internal/api"
	"sample-registry/internal/database"
	"sample-registry/internal/middleware"
	"sample-registry/internal/service"
	"sample-registry/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByEmail     = store.GetUserByEmail
	comparePassword    = service.ComparePassword
	validatePassword   = service.ValidatePassword
	hashPassword       = service.HashPassword
	updateUserPassword = store.UpdateUserPassword
)

// ChangePasswordHandler replaces the caller's password after verifying the
// old one.
// @Summary     Change password
// @Description Verifies the old password and stores a new one satisfying the account policy
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body api.ChangePasswordRequest true "old and new password"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /change_password [post]
func ChangePasswordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ChangePasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		user, err := getUserByEmail(c.Request().Context(), db, claims.Email)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unknown email address"})
		}
		if err := comparePassword(user.PasswordHash, req.OldPassword); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Incorrect password"})
		}
		if err := validatePassword(req.NewPassword); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hashPassword(req.NewPassword)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}
		if err := updateUserPassword(c.Request().Context(), db, user.ID, hash); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Password updated"})
	}
}
