package token

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie set on login and register.
const CookieName = "session_token"

// Token signs and verifies session tokens. A token carries the user id and a
// random session id; it is only accepted while the matching session record
// still exists in the session store, so logout revokes it before expiry.
type Token struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
}

// New creates a new Token instance.
func New(secretKey string, expiration time.Duration) *Token {
	return &Token{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a signed token bound to a user id and session id.
func (t *Token) Generate(ctx context.Context, userID int64, sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":    userID,
		"session_id": sessionID,
		"exp":        now.Add(t.Exp).Unix(),
		"iat":        now.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(t.SecretKey))
}

// Parse validates the token string and returns the user id and session id.
func (t *Token) Parse(ctx context.Context, tokenString string) (int64, string, error) {
	tok, err := jwt.Parse(tokenString, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(t.SecretKey), nil
	})
	if err != nil {
		return 0, "", err
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return 0, "", errors.New("invalid token")
	}

	rawUserID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", errors.New("user_id not found in token")
	}

	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return 0, "", errors.New("session_id not found in token")
	}

	return int64(rawUserID), sessionID, nil
}

// FromRequest extracts the token string from the session cookie, falling
// back to the Authorization header.
func (t *Token) FromRequest(ctx context.Context, r *http.Request) (string, error) {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("no session cookie or authorization header")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
