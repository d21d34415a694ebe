// File: internal/dto/comment.go
package dto

import "time"

// swagger:model dto.CreateCommentRequest
type CreateCommentRequest struct {
	Text string `json:"text" form:"text" validate:"required" example:"Nice post"`
}

// swagger:model dto.UpdateCommentRequest
type UpdateCommentRequest struct {
	Text string `json:"text" form:"text" validate:"required" example:"Edited comment"`
}

// swagger:model dto.CommentResponse
type CommentResponse struct {
	ID        int       `json:"id" example:"1"`
	PostID    int       `json:"post_id" example:"1"`
	AuthorID  int       `json:"author_id" example:"1"`
	Text      string    `json:"text" example:"Nice post"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}

// swagger:model dto.CommentsIndexResponse
type CommentsIndexResponse struct {
	Comments []CommentResponse `json:"comments"`
}
