package store

import (
	"context"
	"fmt"

	"blog-api/internal/database"
	"blog-api/internal/model"
)

func GetCommentByID(ctx context.Context, db database.DB, commentID int) (*model.Comment, error) {
	row := db.QueryRow(ctx,
		`SELECT id, post_id, author_id, text, created_at
		 FROM comments WHERE id = $1`,
		commentID,
	)
	cm := &model.Comment{}
	if err := row.Scan(
		&cm.ID,
		&cm.PostID,
		&cm.AuthorID,
		&cm.Text,
		&cm.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetCommentByID: %w", err)
	}
	return cm, nil
}

// ListCommentsByPost 回傳某篇文章的所有留言
func ListCommentsByPost(ctx context.Context, db database.DB, postID int) ([]model.Comment, error) {
	rows, err := db.Query(ctx,
		`SELECT id, post_id, author_id, text, created_at
		 FROM comments WHERE post_id = $1
		 ORDER BY created_at`,
		postID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCommentsByPost: %w", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var cm model.Comment
		if err := rows.Scan(&cm.ID, &cm.PostID, &cm.AuthorID, &cm.Text, &cm.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListCommentsByPost: %w", err)
		}
		comments = append(comments, cm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCommentsByPost: %w", err)
	}
	return comments, nil
}

func CreateComment(ctx context.Context, db database.DB, cm *model.Comment) (*model.Comment, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO comments (post_id, author_id, text)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		cm.PostID,
		cm.AuthorID,
		cm.Text,
	)
	if err := row.Scan(&cm.ID, &cm.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateComment: %w", err)
	}
	return cm, nil
}

func UpdateComment(ctx context.Context, db database.DB, cm *model.Comment) error {
	_, err := db.Exec(ctx,
		`UPDATE comments SET text = $1
		 WHERE id = $2`,
		cm.Text,
		cm.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateComment: %w", err)
	}
	return nil
}

func DeleteComment(ctx context.Context, db database.DB, ID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM comments WHERE id = $1`,
		ID,
	)
	if err != nil {
		return fmt.Errorf("DeleteComment: %w", err)
	}
	return nil
}
