package app

import (
	"fmt"
	"os"

	"github.com/vinylkeeper/vinylkeeper/pkg/jwtx"
)

// LoadSigningKeys reads the fixed RSA key pair from the configured PEM
// files. The pair is immutable for the process lifetime; any problem here is
// fatal at startup, since the service cannot mint or verify a single session
// without it.
func LoadSigningKeys(cfg Config) (*jwtx.RS256Signer, *jwtx.RS256Verifier, error) {
	privPEM, err := os.ReadFile(cfg.PrivateKeyPath)
	if err != nil {
		return nil, nil, fmt.Errorf("key material unavailable: read private key: %w", err)
	}

	pubPEM, err := os.ReadFile(cfg.PublicKeyPath)
	if err != nil {
		return nil, nil, fmt.Errorf("key material unavailable: read public key: %w", err)
	}

	signer, err := jwtx.NewSignerRS256(privPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("key material unavailable: %w", err)
	}

	verifier, err := jwtx.NewVerifierRS256(pubPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("key material unavailable: %w", err)
	}

	return signer, verifier, nil
}
