package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/store"
	"github.com/vinylkeeper/vinylkeeper/pkg/idx"
)

func newFileStore(t *testing.T) *Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	st, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func testUser(email string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		UserUUID:     idx.New().String(),
		Username:     email,
		Email:        email,
		PasswordHash: "hash",
		IsActive:     true,
		Timezone:     "UTC+1",
	}
}

func TestDSNPragmasApplied(t *testing.T) {
	ctx := context.Background()

	// Same DSN shape the application uses; the driver only understands the
	// _pragma=name(value) form.
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	st, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	var mode string
	require.NoError(t, st.db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
	require.Equal(t, "wal", mode)

	var timeout int
	require.NoError(t, st.db.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&timeout))
	require.Equal(t, 5000, timeout)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	st := newFileStore(t)
	require.NoError(t, st.ApplyMigrations())
}

func TestUsersRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newFileStore(t)

	u := testUser("alice@example.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	byEmail, err := st.Users().GetUserByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
	require.Equal(t, u.UserUUID, byEmail.UserUUID)
	require.True(t, byEmail.IsActive)
	require.Nil(t, byEmail.LastLogin)
	require.False(t, byEmail.RegisteredAt.IsZero())

	byUUID, err := st.Users().GetUserByUUID(ctx, u.UserUUID)
	require.NoError(t, err)
	require.Equal(t, u.ID, byUUID.ID)

	_, err = st.Users().GetUserByEmail(ctx, "missing@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCollectionCascadeDelete(t *testing.T) {
	ctx := context.Background()
	st := newFileStore(t)

	u := testUser("alice@example.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	c := domain.Collection{ID: idx.New().String(), OwnerID: u.ID, Name: "Crates"}
	require.NoError(t, st.Collections().CreateCollection(ctx, c))

	artist := domain.Artist{ID: idx.New().String(), Name: "Television"}
	require.NoError(t, st.Artists().CreateArtist(ctx, artist))

	genre := domain.Genre{ID: idx.New().String(), Name: "Punk"}
	require.NoError(t, st.Genres().CreateGenre(ctx, genre))

	a := domain.Album{
		ID:              idx.New().String(),
		CollectionID:    c.ID,
		Title:           "Marquee Moon",
		ArtistID:        artist.ID,
		GenreID:         genre.ID,
		CoverCondition:  domain.ConditionGood,
		RecordCondition: domain.ConditionGood,
	}
	require.NoError(t, st.Albums().CreateAlbum(ctx, a))

	require.NoError(t, st.Collections().DeleteCollection(ctx, c.ID))

	_, err := st.Albums().GetAlbumByID(ctx, a.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newFileStore(t)

	boom := errors.New("boom")
	u := testUser("alice@example.com")

	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, u); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = st.Users().GetUserByEmail(ctx, u.Email)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRatingUpsertReplaces(t *testing.T) {
	ctx := context.Background()
	st := newFileStore(t)

	u := testUser("alice@example.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	c := domain.Collection{ID: idx.New().String(), OwnerID: u.ID, Name: "Crates"}
	require.NoError(t, st.Collections().CreateCollection(ctx, c))

	artist := domain.Artist{ID: idx.New().String(), Name: "Television"}
	require.NoError(t, st.Artists().CreateArtist(ctx, artist))
	genre := domain.Genre{ID: idx.New().String(), Name: "Punk"}
	require.NoError(t, st.Genres().CreateGenre(ctx, genre))

	a := domain.Album{
		ID:              idx.New().String(),
		CollectionID:    c.ID,
		Title:           "Marquee Moon",
		ArtistID:        artist.ID,
		GenreID:         genre.ID,
		CoverCondition:  domain.ConditionGood,
		RecordCondition: domain.ConditionGood,
	}
	require.NoError(t, st.Albums().CreateAlbum(ctx, a))

	first := domain.Rating{ID: idx.New().String(), UserID: u.ID, AlbumID: a.ID, Score: 3}
	require.NoError(t, st.Ratings().UpsertRating(ctx, first))

	second := domain.Rating{ID: idx.New().String(), UserID: u.ID, AlbumID: a.ID, Score: 5, Comment: "grew on me"}
	require.NoError(t, st.Ratings().UpsertRating(ctx, second))

	list, err := st.Ratings().ListRatingsByAlbum(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 5, list[0].Score)
	require.Equal(t, "grew on me", list[0].Comment)
}
