// File: internal/service/session.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blog-api/internal/database"
	"blog-api/internal/model"
	"blog-api/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Session 管理的錯誤分類，handler 據此決定 HTTP 狀態碼
var (
	// ErrInvalidCredentials 帳號不存在與密碼錯誤一律回傳此錯誤，避免帳號列舉
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized 令牌缺失、無效、過期或已撤銷，不區分原因
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnavailable 資料庫或密碼學依賴失效
	ErrUnavailable = errors.New("service unavailable")
)

// storeTimeout 單次 session 操作對資料庫的時間上限
const storeTimeout = 5 * time.Second

var uuidNew = uuid.New

// TokenPair 一次簽發的存取與更新令牌
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// Login 驗證帳密並建立新的裝置 session
// refresh token 先簽發後落地，落地失敗即視為未發行
func Login(ctx context.Context, db database.DB, username, password string, accessTTL, refreshTTL time.Duration) (*TokenPair, *model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	user, err := store.GetUserByUsername(ctx, db, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("%w: user lookup failed", ErrUnavailable)
	}

	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, rt, err := issueSessionTokens(*user, uuidNew(), accessTTL, refreshTTL)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: token issuance failed", ErrUnavailable)
	}

	if err := store.CreateRefreshToken(ctx, db, rt); err != nil {
		// 未落地的 refresh token 不視為有效
		return nil, nil, fmt.Errorf("%w: refresh token not recorded", ErrUnavailable)
	}
	return pair, user, nil
}

// Refresh 以有效的更新令牌輪替出新的一組令牌
// 輪替是單一條件式 UPDATE：舊值立即失效，併發輪替只有一個成功
func Refresh(ctx context.Context, db database.DB, presented string, accessTTL, refreshTTL time.Duration) (*TokenPair, error) {
	claims, err := VerifyRefreshToken(presented)
	if err != nil {
		return nil, ErrUnauthorized
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	user, err := store.GetUserByID(ctx, db, claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("%w: user lookup failed", ErrUnavailable)
	}

	// 沿用同一個 token id：一個裝置 session 整個生命週期只佔一筆
	pair, rt, err := issueSessionTokens(*user, claims.TokenID, accessTTL, refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: token issuance failed", ErrUnavailable)
	}

	rows, err := store.RotateRefreshToken(ctx, db, claims.TokenID, presented, rt.Token, rt.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("%w: rotation not recorded", ErrUnavailable)
	}
	if rows == 0 {
		// 密碼學上有效但已被輪替或撤銷
		return nil, ErrUnauthorized
	}
	return pair, nil
}

// Logout 撤銷目前裝置 session 的更新令牌，重複登出視為成功
func Logout(ctx context.Context, db database.DB, userID int, presented string) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if _, err := store.DeleteRefreshToken(ctx, db, userID, presented); err != nil {
		return fmt.Errorf("%w: revocation not recorded", ErrUnavailable)
	}
	return nil
}

func issueSessionTokens(user model.User, tokenID uuid.UUID, accessTTL, refreshTTL time.Duration) (*TokenPair, *model.RefreshToken, error) {
	access, err := IssueAccessToken(user, accessTTL)
	if err != nil {
		return nil, nil, err
	}
	refresh, expiresAt, err := IssueRefreshToken(user.ID, tokenID, refreshTTL)
	if err != nil {
		return nil, nil, err
	}
	pair := &TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		RefreshExpiresAt: expiresAt,
	}
	rt := &model.RefreshToken{
		ID:        tokenID,
		UserID:    user.ID,
		Token:     refresh,
		ExpiresAt: expiresAt,
	}
	return pair, rt, nil
}
