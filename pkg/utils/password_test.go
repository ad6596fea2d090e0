package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	// 72 字节是 bcrypt 的输入上限，必须能整段哈希
	for _, pw := range []string{"abc", "secret", "正确的马电池订书钉", strings.Repeat("p", 72)} {
		h, err := HashPassword(pw)
		require.NoError(t, err)
		require.NotEmpty(t, h)
		require.NotEqual(t, pw, h)
		require.True(t, CheckPassword(pw, h))
		require.False(t, CheckPassword(pw+"x", h))
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("secret")
	require.NoError(t, err)
	h2, err := HashPassword("secret")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	t.Parallel()

	require.False(t, CheckPassword("secret", "not-a-bcrypt-hash"))
	require.False(t, CheckPassword("secret", ""))
}

func TestNewID(t *testing.T) {
	t.Parallel()

	a, b := NewID(), NewID()
	require.Len(t, a, 32)
	require.NotEqual(t, a, b)
	require.NotContains(t, a, "-")
}
