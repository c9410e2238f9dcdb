package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/store"
)

func TestLendAndReturn(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	collections := &CollectionService{Store: st}
	albums := &AlbumService{Store: st}
	loans := &LoanService{Store: st}

	alice := createTestUser(t, st, "alice@example.com", "secret123", true)
	mallory := createTestUser(t, st, "mallory@example.com", "secret123", true)

	crate, err := collections.Create(ctx, alice.UserUUID, "Crates", "", false)
	require.NoError(t, err)

	album, err := albums.Add(ctx, alice.UserUUID, crate.ID, AddAlbumInput{
		Title:      "Remain in Light",
		ArtistName: "Talking Heads",
		GenreName:  "New Wave",
	})
	require.NoError(t, err)

	t.Run("lend opens a loan", func(t *testing.T) {
		l, err := loans.Lend(ctx, alice.UserUUID, album.ID, "Dave")
		require.NoError(t, err)
		require.Equal(t, "Dave", l.Borrower)
		require.Nil(t, l.ReturnedAt)

		t.Run("second lend rejected while open", func(t *testing.T) {
			_, err := loans.Lend(ctx, alice.UserUUID, album.ID, "Steve")
			require.ErrorIs(t, err, ErrAlbumOnLoan)
		})

		t.Run("stranger cannot return", func(t *testing.T) {
			_, err := loans.Return(ctx, mallory.UserUUID, l.ID)
			require.ErrorIs(t, err, store.ErrNotFound)
		})

		t.Run("owner returns and can lend again", func(t *testing.T) {
			returned, err := loans.Return(ctx, alice.UserUUID, l.ID)
			require.NoError(t, err)
			require.NotNil(t, returned.ReturnedAt)

			_, err = loans.Return(ctx, alice.UserUUID, l.ID)
			require.ErrorIs(t, err, store.ErrNotFound)

			_, err = loans.Lend(ctx, alice.UserUUID, album.ID, "Steve")
			require.NoError(t, err)
		})
	})

	t.Run("stranger cannot lend someone else's album", func(t *testing.T) {
		_, err := loans.Lend(ctx, mallory.UserUUID, album.ID, "Dave")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("empty borrower rejected", func(t *testing.T) {
		_, err := loans.Lend(ctx, alice.UserUUID, album.ID, "  ")
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("history lists all loans", func(t *testing.T) {
		history, err := loans.ListByUser(ctx, alice.UserUUID)
		require.NoError(t, err)
		require.Len(t, history, 2)
	})
}
