package samples

import (
	"net/http"
	"time"

	"sample-registry/internal/api"
	"sample-registry/internal/cache"
	"sample-registry/internal/database"
	"sample-registry/internal/middleware"
	"sample-registry/internal/service"
	"sample-registry/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	timeNow            = time.Now
	listSamplesByEmail = store.ListSamplesByEmail
	currentSettings    = service.CurrentSettings
)

// ListSamplesHandler returns the caller's samples, split into the current ISO
// week and everything before it.
// @Summary     List my samples
// @Tags        samples
// @Produce     json
// @Success     200 {object} api.SamplesResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /samples [get]
func ListSamplesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		weekStart := service.WeekStart(timeNow())
		current, previous, err := listSamplesByEmail(c.Request().Context(), db, claims.Email, weekStart)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.SamplesResponse{
			CurrentSamples:  api.NewSampleResponses(current),
			PreviousSamples: api.NewSampleResponses(previous),
		})
	}
}

// RunningOptionsHandler lists the admin-configured running options.
// @Summary     List running options
// @Tags        samples
// @Produce     json
// @Success     200 {object} api.RunningOptionsResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /running_options [get]
func RunningOptionsHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		settings, err := currentSettings(c.Request().Context(), db, rdb)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.RunningOptionsResponse{RunningOptions: settings.RunningOptions})
	}
}
