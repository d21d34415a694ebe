// File: internal/dto/users_index_response.go
package dto

// swagger:model dto.UsersIndexResponse
type UsersIndexResponse struct {
	Users []string `json:"users"`
}
