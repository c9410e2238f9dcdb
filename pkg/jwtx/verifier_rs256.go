package jwtx

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidSignature covers tampered, malformed, and wrong-key tokens.
	ErrInvalidSignature = errors.New("jwtx: invalid signature")

	// ErrExpired reports a structurally readable token past its expires-at.
	ErrExpired = errors.New("jwtx: token expired")
)

// RS256Verifier validates session tokens against the fixed RSA public key.
// Only the public key is needed here, so other services can verify tokens
// without ever holding signing capability.
type RS256Verifier struct {
	pub *rsa.PublicKey
}

// NewVerifierRS256 loads an RSA public key from PEM bytes (PKIX or PKCS1).
func NewVerifierRS256(pemKey []byte) (*RS256Verifier, error) {
	block, _ := pem.Decode(pemKey)
	if block == nil {
		return nil, errors.New("jwtx: invalid PEM for RSA public key")
	}

	var pub *rsa.PublicKey

	switch block.Type {
	case "PUBLIC KEY":
		parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("jwtx: parse PKIX: %w", err)
		}
		rk, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, errors.New("jwtx: not an RSA public key")
		}
		pub = rk
	case "RSA PUBLIC KEY":
		parsed, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("jwtx: parse PKCS1: %w", err)
		}
		pub = parsed
	default:
		return nil, fmt.Errorf("jwtx: unsupported PEM type %q", block.Type)
	}

	return &RS256Verifier{pub: pub}, nil
}

// Verify parses the compact token, checks the RS256 signature against the
// public key and then the expiry. Expiry is reported ahead of signature
// problems when both apply.
func (v *RS256Verifier) Verify(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return v.pub, nil
	})
	if err != nil || token == nil || !token.Valid {
		if claims.ExpiresAt != nil && time.Now().UTC().After(claims.ExpiresAt.Time) {
			return nil, ErrExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	if err := claims.ValidateExpiry(); err != nil {
		return nil, err
	}

	return claims, nil
}

// Validate does a quick sanity check that we actually have a key.
func (v *RS256Verifier) Validate() error {
	if v.pub == nil {
		return errors.New("jwtx: nil RSA public key")
	}
	return nil
}
