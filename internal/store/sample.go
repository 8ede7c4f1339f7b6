package store

import (
	"context"
	"fmt"
	"time"

	"sample-registry/internal/database"
	"sample-registry/internal/model"
)

const sampleColumns = `id, date, primary_key, email, name, running_option, reference_sequence_description`

// CountSamplesSince counts samples dated on or after since. Called with the
// ISO-week start it yields this week's submission count.
func CountSamplesSince(ctx context.Context, db database.Querier, since time.Time) (int, error) {
	row := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM samples WHERE date >= $1`,
		since,
	)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("CountSamplesSince: %w", err)
	}
	return n, nil
}

func CreateSample(ctx context.Context, db database.Querier, s *model.Sample) (*model.Sample, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO samples (date, primary_key, email, name, running_option, reference_sequence_description)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		s.Date,
		s.PrimaryKey,
		s.Email,
		s.Name,
		s.RunningOption,
		s.ReferenceSequenceDescription,
	)
	if err := row.Scan(&s.ID); err != nil {
		return nil, fmt.Errorf("CreateSample: %w", err)
	}
	return s, nil
}

// ListSamplesByEmail returns the caller's samples split into the current ISO
// week and everything before it.
func ListSamplesByEmail(ctx context.Context, db database.Querier, email string, weekStart time.Time) (current, previous []model.Sample, err error) {
	current, err = listSamples(ctx, db,
		`SELECT `+sampleColumns+` FROM samples WHERE email = $1 AND date >= $2 ORDER BY id`,
		email, weekStart,
	)
	if err != nil {
		return nil, nil, err
	}
	previous, err = listSamples(ctx, db,
		`SELECT `+sampleColumns+` FROM samples WHERE email = $1 AND date < $2 ORDER BY id`,
		email, weekStart,
	)
	if err != nil {
		return nil, nil, err
	}
	return current, previous, nil
}

// ListAllSamples is ListSamplesByEmail over every user.
func ListAllSamples(ctx context.Context, db database.Querier, weekStart time.Time) (current, previous []model.Sample, err error) {
	current, err = listSamples(ctx, db,
		`SELECT `+sampleColumns+` FROM samples WHERE date >= $1 ORDER BY id`,
		weekStart,
	)
	if err != nil {
		return nil, nil, err
	}
	previous, err = listSamples(ctx, db,
		`SELECT `+sampleColumns+` FROM samples WHERE date < $1 ORDER BY id`,
		weekStart,
	)
	if err != nil {
		return nil, nil, err
	}
	return current, previous, nil
}

// ListSamples returns every sample, oldest first, for the metadata export.
func ListSamples(ctx context.Context, db database.Querier) ([]model.Sample, error) {
	return listSamples(ctx, db, `SELECT `+sampleColumns+` FROM samples ORDER BY id`)
}

func listSamples(ctx context.Context, db database.Querier, query string, args ...any) ([]model.Sample, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listSamples: %w", err)
	}
	defer rows.Close()

	samples := []model.Sample{}
	for rows.Next() {
		var s model.Sample
		if err := rows.Scan(
			&s.ID,
			&s.Date,
			&s.PrimaryKey,
			&s.Email,
			&s.Name,
			&s.RunningOption,
			&s.ReferenceSequenceDescription,
		); err != nil {
			return nil, fmt.Errorf("listSamples: %w", err)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listSamples: %w", err)
	}
	return samples, nil
}
