package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"sample-registry/internal/database"
	"sample-registry/internal/model"
)

// fakeSettingsRow implements pgx.Row for settings scans.
type fakeSettingsRow struct {
	scanErr  error
	settings *model.Settings
}

func (r *fakeSettingsRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	s := r.settings
	switch len(dest) {
	case 7:
		// GetCurrentSettings: id, created_by, created_at, plate_n_rows, plate_n_cols, running_options, last_submission_day
		*dest[0].(*int) = s.ID
		*dest[1].(*string) = s.CreatedBy
		*dest[2].(*time.Time) = s.CreatedAt
		*dest[3].(*int) = s.PlateNRows
		*dest[4].(*int) = s.PlateNCols
		*dest[5].(*[]string) = s.RunningOptions
		*dest[6].(*int) = s.LastSubmissionDay
	case 2:
		// CreateSettings: id, created_at
		*dest[0].(*int) = s.ID
		*dest[1].(*time.Time) = s.CreatedAt
	default:
		panic("fakeSettingsRow.Scan: unexpected number of dest")
	}
	return nil
}

func TestSettingsStore(t *testing.T) {
	now := time.Now().UTC()
	sample := model.Settings{
		ID:                4,
		CreatedBy:         "admin@embl.de",
		CreatedAt:         now,
		PlateNRows:        8,
		PlateNCols:        12,
		RunningOptions:    []string{"standard", "rolling_circle"},
		LastSubmissionDay: 5,
	}

	t.Run("GetCurrentSettings ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
				require.Contains(t, sql, "ORDER BY id DESC LIMIT 1")
				return &fakeSettingsRow{settings: &sample}
			},
		}
		got, err := GetCurrentSettings(context.Background(), db)
		require.NoError(t, err)
		require.Equal(t, sample, *got)
		require.Equal(t, 96, got.PlateCapacity())
	})

	t.Run("GetCurrentSettings err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeSettingsRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetCurrentSettings(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("CreateSettings ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Len(t, args, 5)
				require.Equal(t, "admin@embl.de", args[0])
				return &fakeSettingsRow{settings: &sample}
			},
		}
		s := &model.Settings{
			CreatedBy:         "admin@embl.de",
			PlateNRows:        8,
			PlateNCols:        12,
			RunningOptions:    []string{"standard", "rolling_circle"},
			LastSubmissionDay: 5,
		}
		got, err := CreateSettings(context.Background(), db, s)
		require.NoError(t, err)
		require.Equal(t, 4, got.ID)
		require.Equal(t, now, got.CreatedAt)
	})

	t.Run("CreateSettings err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeSettingsRow{scanErr: errors.New("constraint violation")}
			},
		}
		_, err := CreateSettings(context.Background(), db, &model.Settings{})
		require.Error(t, err)
	})
}
