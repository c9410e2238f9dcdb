package sqlite

import (
	"context"
	"database/sql"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
)

type loansRepo struct {
	db dbtx
}

const loanColumns = `id, user_id, album_id, borrower, loaned_at, returned_at`

func (r *loansRepo) CreateLoan(ctx context.Context, l domain.Loan) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO loans (id, user_id, album_id, borrower)
		VALUES (?, ?, ?, ?)`,
		l.ID, l.UserID, l.AlbumID, l.Borrower,
	)
	return err
}

func (r *loansRepo) GetLoanByID(ctx context.Context, id string) (domain.Loan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+loanColumns+` FROM loans WHERE id = ?`, id)
	return scanLoan(row)
}

// GetOpenLoanByAlbum returns the loan for the album that has not been
// returned yet. At most one such loan exists at a time.
func (r *loansRepo) GetOpenLoanByAlbum(ctx context.Context, albumID string) (domain.Loan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+loanColumns+` FROM loans WHERE album_id = ? AND returned_at IS NULL`, albumID)
	return scanLoan(row)
}

func (r *loansRepo) ReturnLoan(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE loans SET returned_at = CURRENT_TIMESTAMP
		WHERE id = ? AND returned_at IS NULL`, id,
	)
	return err
}

func (r *loansRepo) ListLoansByUser(ctx context.Context, userID string) ([]domain.Loan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+loanColumns+` FROM loans WHERE user_id = ? ORDER BY loaned_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Loan
	for rows.Next() {
		var l domain.Loan
		var returned sql.NullTime
		if err := rows.Scan(&l.ID, &l.UserID, &l.AlbumID, &l.Borrower, &l.LoanedAt, &returned); err != nil {
			return nil, err
		}
		l.ReturnedAt = mapNullTimePtr(returned)
		out = append(out, l)
	}
	return out, rows.Err()
}

func scanLoan(row *sql.Row) (domain.Loan, error) {
	var l domain.Loan
	var returned sql.NullTime

	err := row.Scan(&l.ID, &l.UserID, &l.AlbumID, &l.Borrower, &l.LoanedAt, &returned)
	if err != nil {
		return domain.Loan{}, mapNotFound(err)
	}

	l.ReturnedAt = mapNullTimePtr(returned)
	return l, nil
}
