package model

import "time"

// Settings is one configuration row. Rows are immutable; updating settings
// inserts a new row and reads always use the most recently inserted one.
type Settings struct {
	ID                int       `db:"id" json:"id"`
	CreatedBy         string    `db:"created_by" json:"created_by"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	PlateNRows        int       `db:"plate_n_rows" json:"plate_n_rows"`
	PlateNCols        int       `db:"plate_n_cols" json:"plate_n_cols"`
	RunningOptions    []string  `db:"running_options" json:"running_options"`
	LastSubmissionDay int       `db:"last_submission_day" json:"last_submission_day"`
}

// PlateCapacity is the number of samples one weekly plate can hold.
func (s Settings) PlateCapacity() int {
	return s.PlateNRows * s.PlateNCols
}
