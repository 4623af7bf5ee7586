// Package auth signs and verifies the session tokens issued at login.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var secret = []byte("dev-secret-change-me")

// SetSecret installs the signing secret from configuration. Called once at
// startup before the server accepts requests.
func SetSecret(s string) {
	if s != "" {
		secret = []byte(s)
	}
}

// Claims is the identity carried by a session token. A role change requires
// re-authentication: the role is fixed for the token's lifetime.
type Claims struct {
	UserID int64
	Role   string
}

// SignToken issues an HS256 token valid for 24 hours.
func SignToken(userID int64, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(secret)
}

// ParseToken verifies a token string and extracts its claims.
func ParseToken(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return Claims{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, fmt.Errorf("invalid token")
	}

	out := Claims{}
	if v, ok := claims["user_id"].(float64); ok {
		out.UserID = int64(v)
	}
	if v, ok := claims["role"].(string); ok {
		out.Role = v
	}
	if out.UserID == 0 || out.Role == "" {
		return Claims{}, fmt.Errorf("token missing identity claims")
	}
	return out, nil
}
