package jwt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	// GenerateAccessToken mints a signed HS256 token carrying the session
	// claims. Tokens carry an explicit exp; verification enforces it.
	GenerateAccessToken(userID int64, email string, role string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey      string
	expirationTime string
	tokenAuth      *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, expirationTime string) Service {
	return &JWTService{
		secretKey:      secretKey,
		expirationTime: expirationTime,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID int64, email string, role string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.expirationTime)
	if err != nil {
		return "", 0, err
	}
	now := time.Now()
	expiresAt = now.Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"type":    "access",
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// Identity is the claim set the Access Guard attaches to a request.
type Identity struct {
	UserID int64
	Email  string
	Role   string
}

func (i Identity) IsManager() bool {
	return i.Role == "manager"
}

// IdentityFromContext reads the verified claims placed in the request
// context by the jwtauth verifier.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, err := claimInt64(claims["user_id"])
	if err != nil {
		return Identity{}, fmt.Errorf("user_id claim is missing or invalid: %w", err)
	}

	email, _ := claims["email"].(string)
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return Identity{}, fmt.Errorf("role claim is missing or invalid")
	}

	return Identity{UserID: userID, Email: email, Role: role}, nil
}

// claimInt64 normalizes the numeric representations a decoded JWT claim
// can take depending on the JSON decoder.
func claimInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	case json.Number:
		return n.Int64()
	default:
		return 0, fmt.Errorf("unexpected claim type %T", v)
	}
}
