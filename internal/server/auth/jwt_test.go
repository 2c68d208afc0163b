package auth

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/dreamjob/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken("sess-123", secret, time.Hour)
	require.NoError(t, err)

	sid, err := GetSessionIDFromToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "sess-123", sid)
}

func TestGetSessionIDFromToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("s1", []byte("secret"), -1*time.Second)
	require.NoError(t, err)

	_, err = GetSessionIDFromToken(tok, []byte("secret"))
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestGetSessionIDFromToken_Invalid(t *testing.T) {
	t.Parallel()

	good, err := GenerateToken("s2", []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{SessionID: "s3"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	empty, err := GenerateToken("", []byte("k"), time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{name: "wrong secret", token: good, secret: "wrong-secret"},
		{name: "malformed", token: "not.a.jwt", secret: "k"},
		{name: "alg none", token: unsigned, secret: "k"},
		{name: "empty session id", token: empty, secret: "k"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GetSessionIDFromToken(tt.token, []byte(tt.secret))
			assert.ErrorIs(t, err, common.ErrInvalidToken)
		})
	}
}
