package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carried by a session token.
type Claims struct {
	SessionID uuid.UUID
	Username  string
}

// JWT signs and parses session tokens. Tokens carry no expiry; a session
// ends when it is removed from the session store.
type JWT struct {
	SecretKey string // Secret key for signing tokens
}

// Opt configures a JWT instance.
type Opt func(*JWT)

// WithSecretKey sets the signing key.
func WithSecretKey(key string) Opt {
	return func(j *JWT) {
		j.SecretKey = key
	}
}

// New creates a new JWT instance
func New(opts ...Opt) *JWT {
	j := &JWT{SecretKey: "my_super_secret_key"}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a token for the given session
func (j *JWT) Generate(ctx context.Context, sessionID uuid.UUID, username string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID.String(),
		"sub":        username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims parses the token string and returns its claims if the signature is valid
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	idStr, ok := claims["session_id"].(string)
	if !ok {
		return nil, errors.New("session_id not found in token")
	}
	sessionID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, errors.New("invalid session_id format")
	}

	username, _ := claims["sub"].(string)
	return &Claims{SessionID: sessionID, Username: username}, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
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
