package model

import "time"

// Sample is one submitted sample. PrimaryKey is derived from the submission
// date and plate position and is unique within an ISO week. Rows are never
// mutated after creation.
type Sample struct {
	ID                           int       `db:"id" json:"id"`
	Date                         time.Time `db:"date" json:"date"`
	PrimaryKey                   string    `db:"primary_key" json:"primary_key"`
	Email                        string    `db:"email" json:"email"`
	Name                         string    `db:"name" json:"name"`
	RunningOption                string    `db:"running_option" json:"running_option"`
	ReferenceSequenceDescription *string   `db:"reference_sequence_description" json:"reference_sequence_description"`
}
