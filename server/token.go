package main

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Run tokens let a client reattach to its run after a dropped socket.
// The secret lives only in memory, so tokens die with the process —
// nothing about a run survives a server restart.
const runTokenExpiry = 24 * time.Hour

// TokenIssuer signs and validates run-resume tokens
type TokenIssuer struct {
	secret []byte
}

// NewTokenIssuer generates a fresh in-memory signing secret
func NewTokenIssuer() *TokenIssuer {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		panic("failed to generate token secret: " + err.Error())
	}
	return &TokenIssuer{secret: secret}
}

// Issue signs a token carrying the run id
func (ti *TokenIssuer) Issue(runID string) (string, error) {
	claims := jwt.MapClaims{
		"rid": runID,
		"exp": time.Now().Add(runTokenExpiry).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ti.secret)
}

// Validate checks a token and returns the run id it names
func (ti *TokenIssuer) Validate(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return ti.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	rid, ok := claims["rid"].(string)
	if !ok || rid == "" {
		return "", fmt.Errorf("invalid token claims")
	}
	return rid, nil
}
