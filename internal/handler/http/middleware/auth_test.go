package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wageflow/payroll-backend-go/internal/pkg/jwt"
)

func protectedServer(ja *jwtauth.JWTAuth) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return jwtauth.Verifier(ja)(AuthRequired(ja)(ok))
}

func doRequest(t *testing.T, handler http.Handler, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/timesheets", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestAuthRequired_MissingHeader(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	handler := protectedServer(jwtService.JWTAuth())

	rec := doRequest(t, handler, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "missing bearer", errorMessage(t, rec))
}

func TestAuthRequired_GarbageToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	handler := protectedServer(jwtService.JWTAuth())

	rec := doRequest(t, handler, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid or expired token", errorMessage(t, rec))
}

func TestAuthRequired_WrongSecret(t *testing.T) {
	signer := jwt.NewJWTService("some-other-secret", "1h")
	token, _, err := signer.GenerateAccessToken(1, "manager@company.com", "manager")
	require.NoError(t, err)

	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	handler := protectedServer(jwtService.JWTAuth())

	rec := doRequest(t, handler, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid or expired token", errorMessage(t, rec))
}

func TestAuthRequired_ExpiredToken(t *testing.T) {
	expired := jwt.NewJWTService("test-secret-key-for-jwt", "-1h")
	token, _, err := expired.GenerateAccessToken(1, "manager@company.com", "manager")
	require.NoError(t, err)

	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	handler := protectedServer(jwtService.JWTAuth())

	rec := doRequest(t, handler, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid or expired token", errorMessage(t, rec))
}

func TestAuthRequired_ValidToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	token, _, err := jwtService.GenerateAccessToken(2, "abby.gingell@wageflow.com", "employee")
	require.NoError(t, err)

	handler := protectedServer(jwtService.JWTAuth())

	rec := doRequest(t, handler, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
