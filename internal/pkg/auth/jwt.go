package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims are the fields the console reads from backend-issued tokens. The
// signature is verified by the backend, never here.
type Claims struct {
	Role     string   `json:"role,omitempty"`
	Roles    []string `json:"roles,omitempty"`
	Username string   `json:"username,omitempty"`
	UserID   string   `json:"userId,omitempty"`
	jwt.RegisteredClaims
}

// TokenInfo is what the session keeps about a token.
type TokenInfo struct {
	UserID    string
	Role      string
	ExpiresAt *time.Time
}

// Expired reports whether the token carried an expiry that has passed.
func (t TokenInfo) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}

var parser = jwt.NewParser()

// Inspect decodes a token's claims without verifying its signature.
func Inspect(token string) (*TokenInfo, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	info := &TokenInfo{
		UserID: firstNonEmpty(claims.UserID, claims.Subject, claims.Username),
		Role:   claims.Role,
	}
	if info.Role == "" && len(claims.Roles) > 0 {
		info.Role = claims.Roles[0]
	}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		info.ExpiresAt = &exp
	}
	return info, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// BearerHeader formats the Authorization header value for token.
func BearerHeader(token string) string {
	return "Bearer " + token
}
