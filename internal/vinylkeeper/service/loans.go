package service

import (
	"context"
	"errors"
	"strings"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/store"
	"github.com/vinylkeeper/vinylkeeper/pkg/idx"
)

// ErrAlbumOnLoan reports that an album already has an open loan.
var ErrAlbumOnLoan = errors.New("album_on_loan")

// LoanService tracks records lent out to friends. An album can only be out
// with one borrower at a time.
type LoanService struct {
	Store store.Store
}

// Lend opens a loan on an owned album. The open-loan check and the insert
// run in one transaction so two concurrent lends cannot both succeed.
func (s *LoanService) Lend(ctx context.Context, callerUUID, albumID, borrower string) (domain.Loan, error) {
	borrower = strings.TrimSpace(borrower)
	if borrower == "" {
		return domain.Loan{}, ErrInvalidInput
	}

	caller, err := resolveCaller(ctx, s.Store, callerUUID)
	if err != nil {
		return domain.Loan{}, err
	}

	a, err := s.Store.Albums().GetAlbumByID(ctx, albumID)
	if err != nil {
		return domain.Loan{}, err
	}

	c, err := s.Store.Collections().GetCollectionByID(ctx, a.CollectionID)
	if err != nil {
		return domain.Loan{}, err
	}
	if c.OwnerID != caller.ID {
		return domain.Loan{}, store.ErrNotFound
	}

	loanID := idx.New().String()

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Loans().GetOpenLoanByAlbum(ctx, albumID)
		if err == nil {
			return ErrAlbumOnLoan
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		return tx.Loans().CreateLoan(ctx, domain.Loan{
			ID:       loanID,
			UserID:   caller.ID,
			AlbumID:  albumID,
			Borrower: borrower,
		})
	})
	if err != nil {
		return domain.Loan{}, err
	}

	return s.Store.Loans().GetLoanByID(ctx, loanID)
}

// Return closes an open loan owned by the caller. Returning twice reads as
// not found.
func (s *LoanService) Return(ctx context.Context, callerUUID, loanID string) (domain.Loan, error) {
	caller, err := resolveCaller(ctx, s.Store, callerUUID)
	if err != nil {
		return domain.Loan{}, err
	}

	l, err := s.Store.Loans().GetLoanByID(ctx, loanID)
	if err != nil {
		return domain.Loan{}, err
	}
	if l.UserID != caller.ID {
		return domain.Loan{}, store.ErrNotFound
	}
	if l.ReturnedAt != nil {
		return domain.Loan{}, store.ErrNotFound
	}

	if err := s.Store.Loans().ReturnLoan(ctx, loanID); err != nil {
		return domain.Loan{}, err
	}

	return s.Store.Loans().GetLoanByID(ctx, loanID)
}

func (s *LoanService) ListByUser(ctx context.Context, callerUUID string) ([]domain.Loan, error) {
	caller, err := resolveCaller(ctx, s.Store, callerUUID)
	if err != nil {
		return nil, err
	}

	return s.Store.Loans().ListLoansByUser(ctx, caller.ID)
}
