// File: internal/dto/auth_response.go
package dto

// AuthResponse 登入、註冊與令牌輪替的回應
// refresh token 一律走 cookie，不出現在 body
// swagger:model dto.AuthResponse
type AuthResponse struct {
	Success bool   `json:"success" example:"true"`
	Token   string `json:"token" example:"..."`
}
