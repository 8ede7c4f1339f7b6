package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email" form:"email" validate:"required" example:"alice@embl.de"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123"`
}
