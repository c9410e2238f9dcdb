package service

import (
	"context"
	"strings"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/store"
	"github.com/vinylkeeper/vinylkeeper/pkg/idx"
)

// RatingService records per-user scores for albums. One rating per user per
// album; rating again replaces the previous score.
type RatingService struct {
	Store store.Store
}

func (s *RatingService) Rate(ctx context.Context, callerUUID, albumID string, score int, comment string) error {
	if score < 0 || score > 5 {
		return ErrInvalidInput
	}

	caller, err := resolveCaller(ctx, s.Store, callerUUID)
	if err != nil {
		return err
	}

	if _, err := visibleAlbum(ctx, s.Store, caller.ID, albumID); err != nil {
		return err
	}

	return s.Store.Ratings().UpsertRating(ctx, domain.Rating{
		ID:      idx.New().String(),
		UserID:  caller.ID,
		AlbumID: albumID,
		Score:   score,
		Comment: strings.TrimSpace(comment),
	})
}

func (s *RatingService) ListByAlbum(ctx context.Context, callerUUID, albumID string) ([]domain.Rating, error) {
	caller, err := resolveCaller(ctx, s.Store, callerUUID)
	if err != nil {
		return nil, err
	}

	if _, err := visibleAlbum(ctx, s.Store, caller.ID, albumID); err != nil {
		return nil, err
	}

	return s.Store.Ratings().ListRatingsByAlbum(ctx, albumID)
}
