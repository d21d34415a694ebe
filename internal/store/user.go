package store

import (
	"context"
	"fmt"

	"blog-api/internal/database"
	"blog-api/internal/model"
)

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, username, password_hash, is_admin, created_at
		 FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.IsAdmin,
		&u.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByUsername(ctx context.Context, db database.DB, username string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, username, password_hash, is_admin, created_at
		 FROM users WHERE username = $1`,
		username,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.IsAdmin,
		&u.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByUsername: %w", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, is_admin)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		u.Username,
		u.PasswordHash,
		u.IsAdmin,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// ListUsernames 依字母序回傳所有使用者名稱
func ListUsernames(ctx context.Context, db database.DB) ([]string, error) {
	rows, err := db.Query(ctx,
		`SELECT username FROM users ORDER BY username`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsernames: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("ListUsernames: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsernames: %w", err)
	}
	return names, nil
}

func UpdateUser(ctx context.Context, db database.DB, u *model.User) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET username = $1, is_admin = $2
		 WHERE id = $3`,
		u.Username,
		u.IsAdmin,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUser: %w", err)
	}
	return nil
}

func DeleteUser(ctx context.Context, db database.DB, ID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM users WHERE id = $1`,
		ID,
	)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	return nil
}
