package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated user identity inside a token.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256 bearer tokens.
type JWT struct {
	secretKey string
	exp       time.Duration
}

// Opt configures a JWT instance.
type Opt func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) { j.secretKey = secret }
}

// WithExpiration sets the token validity window counted from issuance.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.exp = exp }
}

// New creates a JWT service. Defaults: empty secret, one hour expiration.
func New(opts ...Opt) *JWT {
	j := &JWT{exp: time.Hour}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token for the given user id.
func (j *JWT) Generate(ctx context.Context, userID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GetClaims parses the token string and returns its claims if the token is valid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return &claims, nil
}

// Validate reports whether the token string is a valid, unexpired token.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
