// File: internal/store/refresh_token.go
package store

import (
	"context"
	"fmt"
	"time"

	"blog-api/internal/database"
	"blog-api/internal/model"

	"github.com/google/uuid"
)

func CreateRefreshToken(ctx context.Context, db database.DB, rt *model.RefreshToken) error {
	_, err := db.Exec(ctx,
		`INSERT INTO refresh_tokens (id, user_id, token, expires_at)
		 VALUES ($1, $2, $3, $4)`,
		rt.ID,
		rt.UserID,
		rt.Token,
		rt.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("CreateRefreshToken: %w", err)
	}
	return nil
}

// ListRefreshTokens 回傳某使用者所有有效 session 的 token 紀錄
func ListRefreshTokens(ctx context.Context, db database.DB, userID int) ([]model.RefreshToken, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, token, expires_at, created_at
		 FROM refresh_tokens WHERE user_id = $1
		 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRefreshTokens: %w", err)
	}
	defer rows.Close()

	var tokens []model.RefreshToken
	for rows.Next() {
		var rt model.RefreshToken
		if err := rows.Scan(&rt.ID, &rt.UserID, &rt.Token, &rt.ExpiresAt, &rt.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListRefreshTokens: %w", err)
		}
		tokens = append(tokens, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRefreshTokens: %w", err)
	}
	return tokens, nil
}

// RotateRefreshToken 以單一條件式 UPDATE 原地替換 token 值
// WHERE 同時比對 id 與舊值，兩個併發輪替只會有一個寫入成功
// 回傳受影響筆數；0 表示該 token 已被輪替或撤銷
func RotateRefreshToken(ctx context.Context, db database.DB, tokenID uuid.UUID, oldToken, newToken string, expiresAt time.Time) (int64, error) {
	tag, err := db.Exec(ctx,
		`UPDATE refresh_tokens
		 SET token = $1, expires_at = $2
		 WHERE id = $3 AND token = $4`,
		newToken,
		expiresAt,
		tokenID,
		oldToken,
	)
	if err != nil {
		return 0, fmt.Errorf("RotateRefreshToken: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteRefreshToken 移除符合 (user, token) 的紀錄，回傳受影響筆數
func DeleteRefreshToken(ctx context.Context, db database.DB, userID int, token string) (int64, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM refresh_tokens WHERE user_id = $1 AND token = $2`,
		userID,
		token,
	)
	if err != nil {
		return 0, fmt.Errorf("DeleteRefreshToken: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteExpiredRefreshTokens 清除過期紀錄
func DeleteExpiredRefreshTokens(ctx context.Context, db database.DB) (int64, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM refresh_tokens WHERE expires_at < now()`,
	)
	if err != nil {
		return 0, fmt.Errorf("DeleteExpiredRefreshTokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
