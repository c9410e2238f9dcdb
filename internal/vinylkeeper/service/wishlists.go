package service

import (
	"context"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/store"
	"github.com/vinylkeeper/vinylkeeper/pkg/idx"
)

// WishlistService tracks albums a user wants. Entries are per user, at most
// one per album.
type WishlistService struct {
	Store store.Store
}

func (s *WishlistService) Add(ctx context.Context, callerUUID, albumID string) (domain.WishlistEntry, error) {
	caller, err := resolveCaller(ctx, s.Store, callerUUID)
	if err != nil {
		return domain.WishlistEntry{}, err
	}

	if _, err := visibleAlbum(ctx, s.Store, caller.ID, albumID); err != nil {
		return domain.WishlistEntry{}, err
	}

	e := domain.WishlistEntry{
		ID:      idx.New().String(),
		UserID:  caller.ID,
		AlbumID: albumID,
	}

	if err := s.Store.Wishlists().AddWishlistEntry(ctx, e); err != nil {
		return domain.WishlistEntry{}, err
	}

	return e, nil
}

func (s *WishlistService) Remove(ctx context.Context, callerUUID, entryID string) error {
	caller, err := resolveCaller(ctx, s.Store, callerUUID)
	if err != nil {
		return err
	}

	return s.Store.Wishlists().DeleteWishlistEntry(ctx, entryID, caller.ID)
}

func (s *WishlistService) List(ctx context.Context, callerUUID string) ([]domain.WishlistEntry, error) {
	caller, err := resolveCaller(ctx, s.Store, callerUUID)
	if err != nil {
		return nil, err
	}

	return s.Store.Wishlists().ListWishlistByUser(ctx, caller.ID)
}
