package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTAuthenticator_RoundTrip(t *testing.T) {
	a := NewJWTAuthenticator("tracker", "tracker", "s3cret", time.Hour)

	claims := a.RegisteredClaims("user-1", "jti-1", time.Now())
	tokenStr, err := a.GenerateToken(claims)
	require.NoError(t, err)

	parsed := jwt.RegisteredClaims{}
	_, err = a.ValidateTokenWithClaims(tokenStr, &parsed)
	require.NoError(t, err)

	assert.Equal(t, "user-1", parsed.Subject)
	assert.Equal(t, "jti-1", parsed.ID)
	assert.Equal(t, time.Hour, a.ExpiresIn())
}

func TestJWTAuthenticator_Rejects(t *testing.T) {
	a := NewJWTAuthenticator("tracker", "tracker", "s3cret", time.Hour)

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "expired",
			token: func(t *testing.T) string {
				tok, err := a.GenerateToken(a.RegisteredClaims("u", "j", time.Now().Add(-2*time.Hour)))
				require.NoError(t, err)
				return tok
			},
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				other := NewJWTAuthenticator("tracker", "tracker", "other", time.Hour)
				tok, err := other.GenerateToken(other.RegisteredClaims("u", "j", time.Now()))
				require.NoError(t, err)
				return tok
			},
		},
		{
			name: "wrong audience",
			token: func(t *testing.T) string {
				other := NewJWTAuthenticator("someone-else", "tracker", "s3cret", time.Hour)
				tok, err := other.GenerateToken(other.RegisteredClaims("u", "j", time.Now()))
				require.NoError(t, err)
				return tok
			},
		},
		{
			name: "garbage",
			token: func(*testing.T) string {
				return "not-a-token"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.ValidateTokenWithClaims(tt.token(t), &jwt.RegisteredClaims{})
			assert.Error(t, err)
		})
	}
}
