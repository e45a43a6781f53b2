package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the structured claims carried by a session token
type AuthClaims interface {
	Subject() string
	UserID() string
	IssuedAt() time.Time
	Expires() time.Time
}

// JWTClaims is the concrete implementation of AuthClaims. The payload is
// deliberately small: the subject id and the issue time.
type JWTClaims struct {
	jwt.RegisteredClaims
}

// Verify interface compliance
var _ AuthClaims = (*JWTClaims)(nil)

// NewClaims builds claims for the given identity issued at the given time.
// A zero ttl produces a token without an expiry claim.
func NewClaims(identity Identity, now time.Time, ttl time.Duration) *JWTClaims {
	claims := &JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  identity.ID(),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}

	if ttl > 0 {
		claims.RegisteredClaims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	return claims
}

// Subject returns the subject claim
func (c *JWTClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID returns the user ID the token was issued for
func (c *JWTClaims) UserID() string {
	return c.Subject()
}

// IssuedAt returns the issued at time
func (c *JWTClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

// Expires returns the expiration time, zero when the token does not expire
func (c *JWTClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}
