// File: internal/dto/post.go
package dto

import "time"

// swagger:model dto.CreatePostRequest
type CreatePostRequest struct {
	Title string `json:"title" form:"title" validate:"required" example:"Hello"`
	Text  string `json:"text" form:"text" validate:"required" example:"First post"`
}

// UpdatePostRequest 未帶的欄位維持原值
// swagger:model dto.UpdatePostRequest
type UpdatePostRequest struct {
	Title     *string `json:"title" form:"title" validate:"omitempty,min=1" example:"Hello"`
	Text      *string `json:"text" form:"text" validate:"omitempty,min=1" example:"Edited"`
	Published *bool   `json:"published" form:"published" example:"true"`
}

// swagger:model dto.PostResponse
type PostResponse struct {
	ID        int       `json:"id" example:"1"`
	Title     string    `json:"title" example:"Hello"`
	Text      string    `json:"text" example:"First post"`
	AuthorID  int       `json:"author_id" example:"1"`
	Published bool      `json:"published" example:"true"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}

// swagger:model dto.PostsIndexResponse
type PostsIndexResponse struct {
	Posts []PostResponse `json:"posts"`
}
