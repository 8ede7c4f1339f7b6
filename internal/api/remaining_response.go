package api

// swagger:model api.RemainingResponse
type RemainingResponse struct {
	Remaining int `json:"remaining" example:"96"`
}
