package handler

import (
	"net/http"

	"sample-registry/internal/api"
	"sample-registry/internal/cache"
	"sample-registry/internal/database"
	"sample-registry/internal/service"

	"github.com/labstack/echo/v4"
)

var remainingSamples = service.RemainingSamples

// RemainingHandler reports how many samples the current week still accepts.
// @Summary     Remaining capacity this week
// @Description Free plate positions left before the weekly deadline; zero once the deadline has passed
// @Tags        samples
// @Produce     json
// @Success     200 {object} api.RemainingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /remaining [get]
func RemainingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		remaining, err := remainingSamples(c.Request().Context(), db, rdb)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.RemainingResponse{Remaining: remaining})
	}
}
