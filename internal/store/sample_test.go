package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"sample-registry/internal/database"
	"sample-registry/internal/model"
)

// fakeSampleRow implements pgx.Row for single-sample scans.
type fakeSampleRow struct {
	scanErr error
	id      int
	count   int
}

func (r *fakeSampleRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	switch len(dest) {
	case 1:
		if r.count > 0 {
			*dest[0].(*int) = r.count
		} else {
			*dest[0].(*int) = r.id
		}
	default:
		panic("fakeSampleRow.Scan: unexpected number of dest")
	}
	return nil
}

// fakeSampleRows implements pgx.Rows over a fixed sample slice.
type fakeSampleRows struct {
	data    []model.Sample
	idx     int
	scanErr error
	err     error
}

func (r *fakeSampleRows) Close()                                       {}
func (r *fakeSampleRows) Err() error                                   { return r.err }
func (r *fakeSampleRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeSampleRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeSampleRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeSampleRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	s := r.data[r.idx]
	r.idx++
	*dest[0].(*int) = s.ID
	*dest[1].(*time.Time) = s.Date
	*dest[2].(*string) = s.PrimaryKey
	*dest[3].(*string) = s.Email
	*dest[4].(*string) = s.Name
	*dest[5].(*string) = s.RunningOption
	*dest[6].(**string) = s.ReferenceSequenceDescription
	return nil
}
func (r *fakeSampleRows) Values() ([]any, error) { return nil, nil }
func (r *fakeSampleRows) RawValues() [][]byte    { return nil }
func (r *fakeSampleRows) Conn() *pgx.Conn        { return nil }

func TestSampleStore(t *testing.T) {
	weekStart := time.Date(2022, 11, 14, 0, 0, 0, 0, time.UTC)
	desc := "X56734.1"
	current := model.Sample{
		ID:            2,
		Date:          weekStart.AddDate(0, 0, 1),
		PrimaryKey:    "22_46_A1",
		Email:         "ada@embl.de",
		Name:          "pUC19",
		RunningOption: "standard",
	}
	previous := model.Sample{
		ID:                           1,
		Date:                         weekStart.AddDate(0, 0, -3),
		PrimaryKey:                   "22_45_A1",
		Email:                        "ada@embl.de",
		Name:                         "pBR322",
		RunningOption:                "standard",
		ReferenceSequenceDescription: &desc,
	}

	t.Run("CountSamplesSince ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "COUNT(*)")
				require.Equal(t, weekStart, args[0])
				return &fakeSampleRow{count: 42}
			},
		}
		n, err := CountSamplesSince(context.Background(), db, weekStart)
		require.NoError(t, err)
		require.Equal(t, 42, n)
	})

	t.Run("CountSamplesSince err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeSampleRow{scanErr: errors.New("connection lost")}
			},
		}
		_, err := CountSamplesSince(context.Background(), db, weekStart)
		require.Error(t, err)
	})

	t.Run("CreateSample ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "INSERT INTO samples")
				require.Len(t, args, 6)
				require.Equal(t, "22_46_A1", args[1])
				return &fakeSampleRow{id: 2}
			},
		}
		s := current
		s.ID = 0
		got, err := CreateSample(context.Background(), db, &s)
		require.NoError(t, err)
		require.Equal(t, 2, got.ID)
	})

	t.Run("CreateSample err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeSampleRow{scanErr: errors.New("duplicate key")}
			},
		}
		_, err := CreateSample(context.Background(), db, &model.Sample{})
		require.Error(t, err)
	})

	t.Run("ListSamplesByEmail ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Equal(t, "ada@embl.de", args[0])
				require.Equal(t, weekStart, args[1])
				if strings.Contains(sql, "date >=") {
					return &fakeSampleRows{data: []model.Sample{current}}, nil
				}
				return &fakeSampleRows{data: []model.Sample{previous}}, nil
			},
		}
		cur, prev, err := ListSamplesByEmail(context.Background(), db, "ada@embl.de", weekStart)
		require.NoError(t, err)
		require.Equal(t, []model.Sample{current}, cur)
		require.Equal(t, []model.Sample{previous}, prev)
	})

	t.Run("ListAllSamples ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Equal(t, weekStart, args[0])
				if strings.Contains(sql, "date >=") {
					return &fakeSampleRows{data: []model.Sample{current}}, nil
				}
				return &fakeSampleRows{data: []model.Sample{previous}}, nil
			},
		}
		cur, prev, err := ListAllSamples(context.Background(), db, weekStart)
		require.NoError(t, err)
		require.Equal(t, []model.Sample{current}, cur)
		require.Equal(t, []model.Sample{previous}, prev)
	})

	t.Run("ListSamples ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Empty(t, args)
				return &fakeSampleRows{data: []model.Sample{previous, current}}, nil
			},
		}
		samples, err := ListSamples(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, samples, 2)
		require.Equal(t, &desc, samples[0].ReferenceSequenceDescription)
	})

	t.Run("ListSamples query err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("connection lost")
			},
		}
		_, err := ListSamples(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("ListSamples rows err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeSampleRows{err: errors.New("stream interrupted")}, nil
			},
		}
		_, err := ListSamples(context.Background(), db)
		require.Error(t, err)
	})
}
