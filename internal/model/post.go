// File: internal/model/post.go
package model

import "time"

// Post 部落格文章
type Post struct {
	ID        int       `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Text      string    `db:"text" json:"text"`
	AuthorID  int       `db:"author_id" json:"author_id"`
	Published bool      `db:"published" json:"published"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
