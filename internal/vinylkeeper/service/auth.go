package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/store"
	"github.com/vinylkeeper/vinylkeeper/pkg/cryptox"
	"github.com/vinylkeeper/vinylkeeper/pkg/jwtx"
	"github.com/vinylkeeper/vinylkeeper/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidToken       = errors.New("invalid_token")
	ErrNotImplemented     = errors.New("not_implemented")
)

// AuthService issues and renews session tokens. Tokens are stateless: there
// is no revocation list, so logout only clears cookies client-side and
// issued tokens stay valid until they expire.
type AuthService struct {
	Store      store.Store
	Signer     *jwtx.RS256Signer
	Verifier   *jwtx.RS256Verifier
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Login authenticates email+password and issues a fresh access/refresh pair.
// Both tokens carry the user's external UUID as subject; internal row ids
// never leave the process.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		l.Info("login rejected for inactive user", slog.String("user_uuid", user.UserUUID))
		return nil, ErrInvalidCredentials
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	access, err := s.Signer.Sign(user.UserUUID, s.AccessTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := s.Signer.Sign(user.UserUUID, s.RefreshTTL)
	if err != nil {
		return nil, err
	}

	l.Info("user logged in", slog.String("user_uuid", user.UserUUID))

	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// Refresh verifies the presented token and, when its subject still maps to
// an active account, issues a new access token with a full TTL. The refresh
// token itself is not re-issued; a session ends at the latest when the
// refresh token expires.
func (s *AuthService) Refresh(ctx context.Context, token string) (string, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		// jwtx.ErrExpired / jwtx.ErrInvalidSignature pass through untouched
		// so callers can distinguish them.
		return "", err
	}

	subject := claims.SubjectUUID()
	if subject == "" {
		return "", ErrInvalidToken
	}

	user, err := s.Store.Users().GetUserByUUID(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", store.ErrNotFound
		}
		return "", err
	}

	// A deactivated account reads the same as a deleted one.
	if !user.IsActive {
		return "", store.ErrNotFound
	}

	if user.UserUUID != subject {
		return "", ErrInvalidToken
	}

	return s.Signer.Sign(user.UserUUID, s.AccessTTL)
}

// RequestPasswordReset is a placeholder; there is no mail delivery yet.
// TODO: wire up an SMTP sender and a one-time reset token table.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	return ErrNotImplemented
}

// ResetPassword is a placeholder until RequestPasswordReset exists.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return ErrNotImplemented
}
