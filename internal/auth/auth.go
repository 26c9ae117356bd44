// Package auth resolves an optional caller identity from a bearer token.
// Identity only gates persistence; recommendation runs never require it.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Claims is the token payload. The subject carries the user id.
type Claims struct {
	jwt.RegisteredClaims
}

// Resolver validates HMAC-signed bearer tokens. A Resolver with no
// secret treats every request as anonymous.
type Resolver struct {
	secret []byte
}

// NewResolver creates a Resolver. An empty secret disables identity
// resolution entirely.
func NewResolver(secret string) *Resolver {
	var key []byte
	if secret != "" {
		key = []byte(secret)
	}
	return &Resolver{secret: key}
}

// ResolveUser extracts the user id from an Authorization header.
// Missing, malformed, expired or badly-signed tokens resolve to the
// empty (anonymous) identity rather than an error.
func (r *Resolver) ResolveUser(authorization string) string {
	if r == nil || len(r.secret) == 0 {
		return ""
	}

	tokenString, ok := strings.CutPrefix(authorization, "Bearer ")
	if !ok || tokenString == "" {
		return ""
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return r.secret, nil
	})
	if err != nil {
		return ""
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return ""
	}
	return claims.Subject
}

// GenerateToken creates a signed token for the given user id, used by
// tooling and tests.
func (r *Resolver) GenerateToken(userID string, ttl time.Duration) (string, error) {
	if len(r.secret) == 0 {
		return "", errors.New("no signing secret configured")
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(r.secret)
}
