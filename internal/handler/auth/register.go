package auth

import (
	"net/http"
	"strings"

	"sample-registry/internal/api"
	"sample-registry/internal/database"
	"sample-registry/internal/model"
	"sample-registry/internal/service"
	"sample-registry/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	validateEmail    = service.ValidateEmail
	validatePassword = service.ValidatePassword
	hashPassword     = service.HashPassword
	createUser       = store.CreateUser
)

// RegisterHandler creates a new non-admin account.
// @Summary     Register a new user
// @Description Creates an account for an address in the permitted domain; the password must satisfy the account policy
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "credentials"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse "policy violation, message names the constraint"
// @Failure     500 {object} api.ErrorResponse
// @Router      /register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)
		if err := validateEmail(req.Email); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: err.Error()})
		}
		if err := validatePassword(req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Email:        req.Email,
			PasswordHash: hash,
			IsAdmin:      false,
		})
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Email address already registered"})
		}

		return c.JSON(http.StatusCreated, api.NewUserResponse(*user))
	}
}
