// Package token issues and verifies the signed session assertions used to
// authorize API requests. Tokens are stateless JWTs: the server keeps no
// record of issued tokens, and validity is determined solely by signature
// and expiry at verification time.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avoronin/bookstore/internal/models"
)

var (
	// ErrInvalidSignature indicates the token was not produced by this
	// issuer's key or was altered in transit.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrExpired indicates the token's expiry has passed.
	ErrExpired = errors.New("token expired")
	// ErrMalformed indicates the token cannot be parsed into the expected shape.
	ErrMalformed = errors.New("malformed token")
)

// Claims is the assertion payload: user identity plus the registered
// expiry claim. The user ID travels in the Subject field.
type Claims struct {
	jwt.RegisteredClaims
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

// Issuer signs and verifies session assertions with an HMAC key.
// The key and TTL are injected at construction so tests can use
// distinct keys per run.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer constructs an Issuer with the given signing key and token lifetime.
func NewIssuer(secret []byte, ttl time.Duration) *Issuer {
	return &Issuer{secret: secret, ttl: ttl}
}

// Issue produces a signed token carrying the user's ID, username, and role,
// expiring at issuance time plus the configured TTL.
func (i *Issuer) Issue(userID, username string, role models.Role) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Username: username,
		Role:     role,
	})
	return token.SignedString(i.secret)
}

// Verify checks the token's signature and expiry and returns the embedded claims.
// Failures map to ErrExpired, ErrInvalidSignature, or ErrMalformed.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return i.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrMalformed
		}
	}
	if !token.Valid {
		return nil, ErrInvalidSignature
	}
	return claims, nil
}

// Authorize reports whether the claims grant the required role.
// The role model is a flat enumeration; there is no hierarchy.
func Authorize(claims *Claims, required models.Role) bool {
	return claims != nil && claims.Role == required
}
