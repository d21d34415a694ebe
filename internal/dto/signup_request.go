// File: internal/dto/signup_request.go
package dto

// swagger:model dto.SignupRequest
type SignupRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=10" example:"bob"`
	Password string `json:"password" form:"password" validate:"required,min=8" example:"secret12"`
}
