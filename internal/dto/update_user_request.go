// File: internal/dto/update_user_request.go
package dto

// UpdateUserRequest 未帶的欄位維持原值
// swagger:model dto.UpdateUserRequest
type UpdateUserRequest struct {
	Username *string `json:"username" form:"username" validate:"omitempty,min=3,max=10" example:"bob"`
	IsAdmin  *bool   `json:"is_admin" form:"is_admin" example:"false"`
}
