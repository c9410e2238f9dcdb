package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/store"
)

func TestAddAlbum(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	collections := &CollectionService{Store: st}
	albums := &AlbumService{Store: st}

	alice := createTestUser(t, st, "alice@example.com", "secret123", true)
	mallory := createTestUser(t, st, "mallory@example.com", "secret123", true)

	crate, err := collections.Create(ctx, alice.UserUUID, "Crates", "", false)
	require.NoError(t, err)

	year := 1977

	t.Run("creates artist and genre on first use", func(t *testing.T) {
		a, err := albums.Add(ctx, alice.UserUUID, crate.ID, AddAlbumInput{
			Title:       "Marquee Moon",
			ArtistName:  "Television",
			GenreName:   "Punk",
			ReleaseYear: &year,
		})
		require.NoError(t, err)
		require.Equal(t, "Marquee Moon", a.Title)
		require.Equal(t, domain.ConditionGood, a.CoverCondition)
		require.NotNil(t, a.ReleaseYear)
		require.Equal(t, 1977, *a.ReleaseYear)

		artist, err := st.Artists().GetArtistByID(ctx, a.ArtistID)
		require.NoError(t, err)
		require.Equal(t, "Television", artist.Name)
	})

	t.Run("reuses existing artist and genre", func(t *testing.T) {
		first, err := albums.Add(ctx, alice.UserUUID, crate.ID, AddAlbumInput{
			Title:      "Adventure",
			ArtistName: "Television",
			GenreName:  "Punk",
		})
		require.NoError(t, err)

		artists, err := albums.ListArtists(ctx)
		require.NoError(t, err)
		require.Len(t, artists, 1)

		genres, err := albums.ListGenres(ctx)
		require.NoError(t, err)
		require.Len(t, genres, 1)

		list, err := albums.List(ctx, alice.UserUUID, crate.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, first.ArtistID, list[0].ArtistID)
	})

	t.Run("stranger cannot add to a private collection", func(t *testing.T) {
		_, err := albums.Add(ctx, mallory.UserUUID, crate.ID, AddAlbumInput{
			Title:      "Intrusion",
			ArtistName: "Nobody",
			GenreName:  "Noise",
		})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("stranger cannot list a private collection", func(t *testing.T) {
		_, err := albums.List(ctx, mallory.UserUUID, crate.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		_, err := albums.Add(ctx, alice.UserUUID, crate.ID, AddAlbumInput{Title: "No Artist"})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
