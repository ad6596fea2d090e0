package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newJWTer(ttl time.Duration) *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "jobtrack-api", TTL: ttl}
}

func TestIssueAndParse(t *testing.T) {
	t.Parallel()

	j := newJWTer(time.Hour)
	tok, err := j.Issue("user-123", "Ann")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.UserID)
	require.Equal(t, "Ann", claims.Name)
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	j := newJWTer(-time.Second)
	tok, err := j.Issue("user-123", "Ann")
	require.NoError(t, err)

	_, err = j.Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	j := newJWTer(time.Hour)
	tok, err := j.Issue("user-123", "Ann")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("other-secret"), Issuer: "jobtrack-api", TTL: time.Hour}
	_, err = other.Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_TamperedPayload(t *testing.T) {
	t.Parallel()

	j := newJWTer(time.Hour)
	tok, err := j.Issue("user-123", "Ann")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	// 改一位负载，签名必失配
	payload := []byte(parts[1])
	payload[0] ^= 0x01
	_, err = j.Parse(parts[0] + "." + string(payload) + "." + parts[2])
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	j := newJWTer(time.Hour)
	for _, tok := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := j.Parse(tok)
		require.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestParse_WrongIssuer(t *testing.T) {
	t.Parallel()

	other := &JWTer{Secret: []byte("test-secret"), Issuer: "someone-else", TTL: time.Hour}
	tok, err := other.Issue("user-123", "Ann")
	require.NoError(t, err)

	_, err = newJWTer(time.Hour).Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}
