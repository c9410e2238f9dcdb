package sqlite

import (
	"context"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/store"
)

type wishlistsRepo struct {
	db dbtx
}

func (r *wishlistsRepo) AddWishlistEntry(ctx context.Context, e domain.WishlistEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO wishlists (id, user_id, album_id)
		VALUES (?, ?, ?)`,
		e.ID, e.UserID, e.AlbumID,
	)
	return err
}

// DeleteWishlistEntry removes the entry only when it belongs to userID, so
// one user cannot clear another user's wishlist. A missing or foreign entry
// reads as ErrNotFound, same as the other owner-scoped operations.
func (r *wishlistsRepo) DeleteWishlistEntry(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM wishlists WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *wishlistsRepo) ListWishlistByUser(ctx context.Context, userID string) ([]domain.WishlistEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, album_id, created_at
		FROM wishlists WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.WishlistEntry
	for rows.Next() {
		var e domain.WishlistEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.AlbumID, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
