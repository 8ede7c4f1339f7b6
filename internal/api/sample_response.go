package api

import "sample-registry/internal/model"

// swagger:model api.SampleResponse
type SampleResponse struct {
	ID                           int     `json:"id" example:"1"`
	Date                         string  `json:"date" example:"2022-11-14"`
	PrimaryKey                   string  `json:"primary_key" example:"22_46_A1"`
	Email                        string  `json:"email" example:"alice@embl.de"`
	Name                         string  `json:"name" example:"pUC19"`
	RunningOption                string  `json:"running_option" example:"standard"`
	ReferenceSequenceDescription *string `json:"reference_sequence_description"`
}

func NewSampleResponse(s model.Sample) SampleResponse {
	return SampleResponse{
		ID:                           s.ID,
		Date:                         s.Date.Format("2006-01-02"),
		PrimaryKey:                   s.PrimaryKey,
		Email:                        s.Email,
		Name:                         s.Name,
		RunningOption:                s.RunningOption,
		ReferenceSequenceDescription: s.ReferenceSequenceDescription,
	}
}

func NewSampleResponses(samples []model.Sample) []SampleResponse {
	out := make([]SampleResponse, 0, len(samples))
	for _, s := range samples {
		out = append(out, NewSampleResponse(s))
	}
	return out
}

// swagger:model api.SamplesResponse
type SamplesResponse struct {
	CurrentSamples  []SampleResponse `json:"current_samples"`
	PreviousSamples []SampleResponse `json:"previous_samples"`
}

// swagger:model api.AddSampleResponse
type AddSampleResponse struct {
	Sample SampleResponse `json:"sample"`
}
