package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the fixed claim set we embed in session tokens: subject,
// issued-at and expires-at. The subject is always the user's external UUID,
// never an internal row id. We deliberately expose plain accessors instead
// of a generic claim-resolver; two fields don't need a visitor.
type Claims struct {
	jwt.RegisteredClaims
}

// NewClaims builds minimally-correct claims for a session token.
// JWT NumericDates truncate to whole seconds, which is fine for us.
func NewClaims(subject string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

// SubjectUUID returns the subject claim, the external identifier the token
// asserts.
func (c *Claims) SubjectUUID() string { return c.Subject }

// ValidateExpiry ensures the token hasn't passed its expires-at.
func (c *Claims) ValidateExpiry() error {
	if c.ExpiresAt != nil && time.Now().UTC().After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	return nil
}
