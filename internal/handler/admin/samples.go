package admin

import (
	"net/http"
	"time"

	"sample-registry/internal/api"
	"sample-registry/internal/database"
	"sample-registry/internal/service"
	"sample-registry/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	timeNow        = time.Now
	listAllSamples = store.ListAllSamples
	listSamples    = store.ListSamples
	zipSamplesTSV  = service.ZipSamplesTSV
)

// AllSamplesHandler returns every user's samples, split by the current ISO
// week.
// @Summary     List all samples
// @Tags        admin
// @Produce     json
// @Success     200 {object} api.SamplesResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/allsamples [get]
func AllSamplesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		weekStart := service.WeekStart(timeNow())
		current, previous, err := listAllSamples(c.Request().Context(), db, weekStart)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.SamplesResponse{
			CurrentSamples:  api.NewSampleResponses(current),
			PreviousSamples: api.NewSampleResponses(previous),
		})
	}
}

// ZipSamplesHandler exports all sample metadata as a zip archive holding a
// single samples.tsv entry.
// @Summary     Export samples
// @Tags        admin
// @Produce     application/zip
// @Success     200 {file} binary
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/zipsamples [post]
func ZipSamplesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		samples, err := listSamples(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		data, err := zipSamplesTSV(samples)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="samples.zip"`)
		return c.Blob(http.StatusOK, "application/zip", data)
	}
}
