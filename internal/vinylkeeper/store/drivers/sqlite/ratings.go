package sqlite

import (
	"context"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
)

type ratingsRepo struct {
	db dbtx
}

func (r *ratingsRepo) UpsertRating(ctx context.Context, rt domain.Rating) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO ratings (id, user_id, album_id, score, comment)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, album_id) DO UPDATE SET
			score = excluded.score,
			comment = excluded.comment,
			updated_at = CURRENT_TIMESTAMP`,
		rt.ID, rt.UserID, rt.AlbumID, rt.Score, rt.Comment,
	)
	return err
}

func (r *ratingsRepo) ListRatingsByAlbum(ctx context.Context, albumID string) ([]domain.Rating, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, album_id, score, comment, created_at, updated_at
		FROM ratings WHERE album_id = ? ORDER BY created_at DESC`, albumID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Rating
	for rows.Next() {
		var rt domain.Rating
		if err := rows.Scan(&rt.ID, &rt.UserID, &rt.AlbumID, &rt.Score, &rt.Comment, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}
