package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	pwd := "secret12"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))
	require.Error(t, ComparePassword(hash, "wrong"))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestComparePasswordLength(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, err := HashPassword("secret12")
	require.NoError(t, err)
	// 長度不同與內容不同回傳同類錯誤
	errShort := ComparePassword(hash, "x")
	errWrong := ComparePassword(hash, "secret13")
	require.ErrorIs(t, errShort, bcrypt.ErrMismatchedHashAndPassword)
	require.ErrorIs(t, errWrong, bcrypt.ErrMismatchedHashAndPassword)
}
