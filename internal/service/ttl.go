// File: internal/service/ttl.go
package service

import (
	"os"
	"time"
)

// AccessTokenTTL 讀取 ACCESS_TOKEN_TTL（如 "15m"），未設定或格式錯誤時用預設值
func AccessTokenTTL() time.Duration {
	if v := os.Getenv("ACCESS_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return DefaultAccessTokenTTL
}

// RefreshTokenTTL 讀取 REFRESH_TOKEN_TTL（如 "720h"），未設定或格式錯誤時用預設值
func RefreshTokenTTL() time.Duration {
	if v := os.Getenv("REFRESH_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return DefaultRefreshTokenTTL
}
