// File: internal/dto/login_request.go
package dto

// swagger:model dto.LoginRequest
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required" example:"bob"`
	Password string `json:"password" form:"password" validate:"required" example:"secret12"`
}
