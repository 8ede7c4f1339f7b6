package admin

import (
	"net/http"

	"sample-registry/internal/api"
	"sample-registry/internal/cache"
	"sample-registry/internal/database"
	"sample-registry/internal/middleware"
	"sample-registry/internal/model"
	"sample-registry/internal/service"
	"sample-registry/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	currentSettings = service.CurrentSettings
	createSettings  = store.CreateSettings
)

// GetSettingsHandler returns the current configuration.
// @Summary     Read settings
// @Tags        admin
// @Produce     json
// @Success     200 {object} api.SettingsResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/settings [get]
func GetSettingsHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		settings, err := currentSettings(c.Request().Context(), db, rdb)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewSettingsResponse(*settings))
	}
}

// UpdateSettingsHandler appends a new settings row. A candidate missing any
// field is rejected and nothing changes.
// @Summary     Replace settings
// @Description Inserts a new settings row; previous rows remain as history
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       request body api.SettingsRequest true "complete settings candidate"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse "incomplete candidate, settings not updated"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/settings [post]
func UpdateSettingsHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SettingsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Settings not updated"})
		}

		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		settings, err := createSettings(c.Request().Context(), db, &model.Settings{
			CreatedBy:         claims.Email,
			PlateNRows:        req.PlateNRows,
			PlateNCols:        req.PlateNCols,
			RunningOptions:    req.RunningOptions,
			LastSubmissionDay: req.LastSubmissionDay,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		service.CacheSettings(c.Request().Context(), rdb, settings)

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Settings updated"})
	}
}
