package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAccessTokenTTL(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL", "")
	require.Equal(t, DefaultAccessTokenTTL, AccessTokenTTL())

	t.Setenv("ACCESS_TOKEN_TTL", "5m")
	require.Equal(t, 5*time.Minute, AccessTokenTTL())

	// 格式錯誤與非正值都退回預設
	t.Setenv("ACCESS_TOKEN_TTL", "soon")
	require.Equal(t, DefaultAccessTokenTTL, AccessTokenTTL())
	t.Setenv("ACCESS_TOKEN_TTL", "-1h")
	require.Equal(t, DefaultAccessTokenTTL, AccessTokenTTL())
}

func TestRefreshTokenTTL(t *testing.T) {
	t.Setenv("REFRESH_TOKEN_TTL", "")
	require.Equal(t, DefaultRefreshTokenTTL, RefreshTokenTTL())

	t.Setenv("REFRESH_TOKEN_TTL", "168h")
	require.Equal(t, 168*time.Hour, RefreshTokenTTL())

	t.Setenv("REFRESH_TOKEN_TTL", "bad")
	require.Equal(t, DefaultRefreshTokenTTL, RefreshTokenTTL())
}
