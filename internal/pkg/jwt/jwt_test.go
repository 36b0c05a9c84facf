package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	token, expiresAt, err := svc.GenerateAccessToken(42, "abby.gingell@wageflow.com", "employee")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)

	userID, err := claimInt64(claims["user_id"])
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "abby.gingell@wageflow.com", claims["email"])
	assert.Equal(t, "employee", claims["role"])
	assert.Equal(t, "access", claims["type"])
	assert.NotEmpty(t, claims["jti"])
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	signer := NewJWTService(testSecret, "1h")
	verifier := NewJWTService("a-completely-different-secret", "1h")

	token, _, err := signer.GenerateAccessToken(1, "manager@company.com", "manager")
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(verifier.JWTAuth(), token)
	assert.Error(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	svc := NewJWTService(testSecret, "-1h")

	token, _, err := svc.GenerateAccessToken(1, "manager@company.com", "manager")
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(svc.JWTAuth(), token)
	assert.Error(t, err)
}

func TestClaimInt64(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  int64
		ok    bool
	}{
		{"int64", int64(7), 7, true},
		{"float64", float64(7), 7, true},
		{"string", "7", 0, false},
		{"nil", nil, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := claimInt64(c.input)
			if c.ok {
				require.NoError(t, err)
				assert.Equal(t, c.want, got)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
