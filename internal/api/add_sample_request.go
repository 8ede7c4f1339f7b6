package api

// AddSampleRequest carries the multipart form fields of a submission; the
// optional reference sequence file arrives as the "file" part.
// swagger:model api.AddSampleRequest
type AddSampleRequest struct {
	Name          string `form:"name" validate:"required" example:"pUC19"`
	RunningOption string `form:"running_option" validate:"required" example:"standard"`
}
