// File: internal/service/token.go
package service

import (
	"fmt"
	"os"
	"time"

	"blog-api/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// 預設 TTL：access token 以分鐘計且無伺服器端紀錄，
// refresh token 以天計且每筆都落在 refresh_tokens 表
const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 30 * 24 * time.Hour
)

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// AccessClaims 定義存取令牌的 JWT 負載內容
type AccessClaims struct {
	UserID  int  `json:"id"`
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// RefreshClaims 更新令牌負載，TokenID 對應 refresh_tokens 表的鍵
type RefreshClaims struct {
	UserID  int       `json:"id"`
	TokenID uuid.UUID `json:"token_id"`
	jwt.RegisteredClaims
}

// 兩類令牌使用不同密鑰，存取令牌密鑰外洩無法鑄造更新令牌
func accessSecret() (string, error) {
	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		return "", fmt.Errorf("ACCESS_TOKEN_SECRET not set")
	}
	return secret, nil
}

func refreshSecret() (string, error) {
	secret := os.Getenv("REFRESH_TOKEN_SECRET")
	if secret == "" {
		return "", fmt.Errorf("REFRESH_TOKEN_SECRET not set")
	}
	return secret, nil
}

// IssueAccessToken 依據使用者資訊與 TTL 產生 JWT
func IssueAccessToken(user model.User, ttl time.Duration) (string, error) {
	secret, err := accessSecret()
	if err != nil {
		return "", err
	}

	now := timeNow()
	claims := AccessClaims{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken 驗證並解析存取令牌，只檢查簽章與效期，不查資料庫
func VerifyAccessToken(tokenString string) (*AccessClaims, error) {
	secret, err := accessSecret()
	if err != nil {
		return nil, err
	}

	token, err := parseWithClaims(tokenString, &AccessClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// IssueRefreshToken 產生更新令牌並回傳到期時間
// tokenID 為該裝置 session 的鍵，輪替時沿用
func IssueRefreshToken(userID int, tokenID uuid.UUID, ttl time.Duration) (string, time.Time, error) {
	secret, err := refreshSecret()
	if err != nil {
		return "", time.Time{}, err
	}

	now := timeNow()
	expiresAt := now.Add(ttl)
	claims := RefreshClaims{
		UserID:  userID,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// VerifyRefreshToken 驗證並解析更新令牌
// 簽章錯誤、格式錯誤與過期對呼叫端不作區分
func VerifyRefreshToken(tokenString string) (*RefreshClaims, error) {
	secret, err := refreshSecret()
	if err != nil {
		return nil, err
	}

	token, err := parseWithClaims(tokenString, &RefreshClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*RefreshClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
