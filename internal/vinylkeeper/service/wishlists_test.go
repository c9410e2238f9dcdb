package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/store"
)

func TestWishlist(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	collections := &CollectionService{Store: st}
	albums := &AlbumService{Store: st}
	wishlists := &WishlistService{Store: st}

	alice := createTestUser(t, st, "alice@example.com", "secret123", true)
	mallory := createTestUser(t, st, "mallory@example.com", "secret123", true)

	showcase, err := collections.Create(ctx, alice.UserUUID, "Showcase", "", true)
	require.NoError(t, err)

	album, err := albums.Add(ctx, alice.UserUUID, showcase.ID, AddAlbumInput{
		Title:      "Unknown Pleasures",
		ArtistName: "Joy Division",
		GenreName:  "Post-Punk",
	})
	require.NoError(t, err)

	entry, err := wishlists.Add(ctx, alice.UserUUID, album.ID)
	require.NoError(t, err)
	require.Equal(t, album.ID, entry.AlbumID)

	t.Run("list returns the entry", func(t *testing.T) {
		list, err := wishlists.List(ctx, alice.UserUUID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, entry.ID, list[0].ID)
	})

	t.Run("removing a nonexistent entry reads as not found", func(t *testing.T) {
		require.ErrorIs(t, wishlists.Remove(ctx, alice.UserUUID, "no-such-entry"), store.ErrNotFound)
	})

	t.Run("removing another user's entry reads as not found", func(t *testing.T) {
		require.ErrorIs(t, wishlists.Remove(ctx, mallory.UserUUID, entry.ID), store.ErrNotFound)

		// The entry is still there for its owner.
		list, err := wishlists.List(ctx, alice.UserUUID)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("owner removes the entry", func(t *testing.T) {
		require.NoError(t, wishlists.Remove(ctx, alice.UserUUID, entry.ID))

		list, err := wishlists.List(ctx, alice.UserUUID)
		require.NoError(t, err)
		require.Empty(t, list)
	})
}
