// File: internal/model/refresh_token.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken 一個裝置 session 對應一筆紀錄
// 輪替時以 ID 為鍵原地替換 Token 值
type RefreshToken struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	Token     string    `db:"token" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
