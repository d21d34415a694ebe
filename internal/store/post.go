package store

import (
	"context"
	"fmt"

	"blog-api/internal/database"
	"blog-api/internal/model"
)

func GetPostByID(ctx context.Context, db database.DB, postID int) (*model.Post, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, text, author_id, published, created_at
		 FROM posts WHERE id = $1`,
		postID,
	)
	p := &model.Post{}
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Text,
		&p.AuthorID,
		&p.Published,
		&p.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetPostByID: %w", err)
	}
	return p, nil
}

// ListPosts 依建立時間序回傳所有文章
func ListPosts(ctx context.Context, db database.DB) ([]model.Post, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, text, author_id, published, created_at
		 FROM posts ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListPosts: %w", err)
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Text, &p.AuthorID, &p.Published, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListPosts: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPosts: %w", err)
	}
	return posts, nil
}

func CreatePost(ctx context.Context, db database.DB, p *model.Post) (*model.Post, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO posts (title, text, author_id, published)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		p.Title,
		p.Text,
		p.AuthorID,
		p.Published,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreatePost: %w", err)
	}
	return p, nil
}

func UpdatePost(ctx context.Context, db database.DB, p *model.Post) error {
	_, err := db.Exec(ctx,
		`UPDATE posts SET title = $1, text = $2, published = $3
		 WHERE id = $4`,
		p.Title,
		p.Text,
		p.Published,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdatePost: %w", err)
	}
	return nil
}

func DeletePost(ctx context.Context, db database.DB, ID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM posts WHERE id = $1`,
		ID,
	)
	if err != nil {
		return fmt.Errorf("DeletePost: %w", err)
	}
	return nil
}
