package jwtx_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vinylkeeper/vinylkeeper/pkg/cryptox"
	"github.com/vinylkeeper/vinylkeeper/pkg/jwtx"
)

func newTestPair(t *testing.T) (*jwtx.RS256Signer, *jwtx.RS256Verifier) {
	t.Helper()

	privPEM, pubPEM, err := cryptox.GenerateRSAKeyPair(2048)
	require.NoError(t, err)

	signer, err := jwtx.NewSignerRS256(privPEM)
	require.NoError(t, err)
	require.NoError(t, signer.Validate())

	verifier, err := jwtx.NewVerifierRS256(pubPEM)
	require.NoError(t, err)
	require.NoError(t, verifier.Validate())

	return signer, verifier
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	signer, verifier := newTestPair(t)

	token, err := signer.Sign("6a6e3b1c-8f1d-4b37-9f25-1f6f2e9b7a01", 5*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "6a6e3b1c-8f1d-4b37-9f25-1f6f2e9b7a01", claims.SubjectUUID())
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	require.WithinDuration(t, claims.IssuedAt.Add(5*time.Minute), claims.ExpiresAt.Time, time.Second)
}

func TestVerifyExpiredToken(t *testing.T) {
	signer, verifier := newTestPair(t)

	token, err := signer.Sign("user-uuid", -1*time.Minute)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyWrongKeyPair(t *testing.T) {
	signer, _ := newTestPair(t)
	_, otherVerifier := newTestPair(t)

	token, err := signer.Sign("user-uuid", 5*time.Minute)
	require.NoError(t, err)

	_, err = otherVerifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSignature)
}

func TestVerifyExpiredBeatsBadSignature(t *testing.T) {
	// An expired token reports expiry even when signed by a different key.
	signer, _ := newTestPair(t)
	_, otherVerifier := newTestPair(t)

	token, err := signer.Sign("user-uuid", -1*time.Minute)
	require.NoError(t, err)

	_, err = otherVerifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyMalformedToken(t *testing.T) {
	_, verifier := newTestPair(t)

	for _, tok := range []string{"", "garbage", "a.b.c", "e30.e30."} {
		_, err := verifier.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidSignature, "token %q", tok)
	}
}

func TestNewSignerRejectsBadPEM(t *testing.T) {
	_, err := jwtx.NewSignerRS256([]byte("not a pem"))
	require.Error(t, err)

	_, err = jwtx.NewVerifierRS256([]byte("not a pem"))
	require.Error(t, err)
}

func TestVerifierRejectsPrivateKeyPEM(t *testing.T) {
	privPEM, _, err := cryptox.GenerateRSAKeyPair(2048)
	require.NoError(t, err)

	_, err = jwtx.NewVerifierRS256(privPEM)
	require.Error(t, err)
}
