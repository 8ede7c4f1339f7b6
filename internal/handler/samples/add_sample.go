package samples

import (
	"errors"
	"io"
	"net/http"
	"os"

	"sample-registry/internal/api"
	"sample-registry/internal/database"
	"sample-registry/internal/middleware"
	"sample-registry/internal/service"

	"github.com/labstack/echo/v4"
)

var addSample = service.AddSample

// AddSampleHandler registers a sample into the current week's plate.
// @Summary     Submit a sample
// @Description Assigns the next plate position this week and stores the sample; an optional reference sequence file (FASTA, EMBL or GenBank) is normalized to FASTA
// @Tags        samples
// @Accept      multipart/form-data
// @Produce     json
// @Param       name           formData string true  "sample name"
// @Param       running_option formData string true  "selected running option"
// @Param       file           formData file   false "reference sequence file"
// @Success     200 {object} api.AddSampleResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse "plate full or unparseable reference file"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /addsample [post]
func AddSampleHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.AddSampleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		var reference []byte
		if fh, err := c.FormFile("file"); err == nil {
			src, err := fh.Open()
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "failed to read reference file"})
			}
			reference, err = io.ReadAll(src)
			src.Close()
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "failed to read reference file"})
			}
		}

		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		sample, err := addSample(c.Request().Context(), db, claims.Email, req.Name, req.RunningOption, reference, os.Getenv("DATA_PATH"))
		if err != nil {
			if errors.Is(err, service.ErrPlateFull) || errors.Is(err, service.ErrUnparseableReference) {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.AddSampleResponse{Sample: api.NewSampleResponse(*sample)})
	}
}
