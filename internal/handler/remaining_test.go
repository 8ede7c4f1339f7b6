package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"sample-registry/internal/cache"
	"sample-registry/internal/database"
)

func TestRemainingHandler(t *testing.T) {
	origRemaining := remainingSamples
	defer func() { remainingSamples = origRemaining }()

	remainingSamples = func(ctx context.Context, db database.Querier, rdb cache.Cache) (int, error) {
		return 42, nil
	}

	e := echo.New()
	ctx, rec := newHandlerCtx(e)
	require.NoError(t, RemainingHandler(&database.FakeDB{}, &cache.FakeCache{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"remaining":42}`, rec.Body.String())
}

func TestRemainingHandlerError(t *testing.T) {
	origRemaining := remainingSamples
	defer func() { remainingSamples = origRemaining }()

	remainingSamples = func(ctx context.Context, db database.Querier, rdb cache.Cache) (int, error) {
		return 0, errors.New("no settings")
	}

	e := echo.New()
	ctx, rec := newHandlerCtx(e)
	require.NoError(t, RemainingHandler(&database.FakeDB{}, &cache.FakeCache{})(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
