package api

import "sample-registry/internal/model"

// SettingsRequest must carry every settings field; a candidate with missing
// or invalid keys is rejected without touching the stored configuration.
// swagger:model api.SettingsRequest
type SettingsRequest struct {
	PlateNRows        int      `json:"plate_n_rows" validate:"required,min=1" example:"8"`
	PlateNCols        int      `json:"plate_n_cols" validate:"required,min=1" example:"12"`
	RunningOptions    []string `json:"running_options" validate:"required,min=1,dive,required"`
	LastSubmissionDay int      `json:"last_submission_day" validate:"required,min=1,max=7" example:"5"`
}

// swagger:model api.SettingsResponse
type SettingsResponse struct {
	PlateNRows        int      `json:"plate_n_rows" example:"8"`
	PlateNCols        int      `json:"plate_n_cols" example:"12"`
	RunningOptions    []string `json:"running_options"`
	LastSubmissionDay int      `json:"last_submission_day" example:"5"`
}

func NewSettingsResponse(s model.Settings) SettingsResponse {
	return SettingsResponse{
		PlateNRows:        s.PlateNRows,
		PlateNCols:        s.PlateNCols,
		RunningOptions:    s.RunningOptions,
		LastSubmissionDay: s.LastSubmissionDay,
	}
}
