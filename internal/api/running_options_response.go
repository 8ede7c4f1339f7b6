package api

// swagger:model api.RunningOptionsResponse
type RunningOptionsResponse struct {
	RunningOptions []string `json:"running_options"`
}
