package store

import (
	"context"
	"fmt"

	"sample-registry/internal/database"
	"sample-registry/internal/model"
)

// GetCurrentSettings returns the most recently inserted settings row. A seed
// migration guarantees the table is never empty.
func GetCurrentSettings(ctx context.Context, db database.Querier) (*model.Settings, error) {
	row := db.QueryRow(ctx,
		`SELECT id, created_by, created_at, plate_n_rows, plate_n_cols, running_options, last_submission_day
		 FROM settings ORDER BY id DESC LIMIT 1`,
	)
	s := &model.Settings{}
	if err := row.Scan(
		&s.ID,
		&s.CreatedBy,
		&s.CreatedAt,
		&s.PlateNRows,
		&s.PlateNCols,
		&s.RunningOptions,
		&s.LastSubmissionDay,
	); err != nil {
		return nil, fmt.Errorf("GetCurrentSettings: %w", err)
	}
	return s, nil
}

// CreateSettings appends a new settings row; existing rows are never updated.
func CreateSettings(ctx context.Context, db database.Querier, s *model.Settings) (*model.Settings, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO settings (created_by, plate_n_rows, plate_n_cols, running_options, last_submission_day)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		s.CreatedBy,
		s.PlateNRows,
		s.PlateNCols,
		s.RunningOptions,
		s.LastSubmissionDay,
	)
	if err := row.Scan(&s.ID, &s.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateSettings: %w", err)
	}
	return s, nil
}
