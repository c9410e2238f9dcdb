package service

import (
	"context"
	"errors"
	"strings"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/store"
	"github.com/vinylkeeper/vinylkeeper/pkg/idx"
)

// AlbumService manages records inside collections, plus the shared
// artist/genre reference data they point at.
type AlbumService struct {
	Store store.Store
}

// AddAlbumInput carries the album fields as submitted by a client. Artist
// and genre arrive as names and are resolved (or created) server-side.
type AddAlbumInput struct {
	Title           string
	ArtistName      string
	GenreName       string
	ReleaseYear     *int
	Description     string
	CoverCondition  domain.Condition
	RecordCondition domain.Condition
}

// Add inserts an album into an owned collection. Artist and genre rows are
// created on first use inside the same transaction so a half-created album
// never leaves a dangling reference.
func (s *AlbumService) Add(ctx context.Context, callerUUID, collectionID string, in AddAlbumInput) (domain.Album, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.ArtistName = strings.TrimSpace(in.ArtistName)
	in.GenreName = strings.TrimSpace(in.GenreName)
	if in.Title == "" || in.ArtistName == "" || in.GenreName == "" {
		return domain.Album{}, ErrInvalidInput
	}

	if in.CoverCondition == "" {
		in.CoverCondition = domain.ConditionGood
	}
	if in.RecordCondition == "" {
		in.RecordCondition = domain.ConditionGood
	}

	caller, err := resolveCaller(ctx, s.Store, callerUUID)
	if err != nil {
		return domain.Album{}, err
	}

	c, err := s.Store.Collections().GetCollectionByID(ctx, collectionID)
	if err != nil {
		return domain.Album{}, err
	}
	if c.OwnerID != caller.ID {
		return domain.Album{}, store.ErrNotFound
	}

	albumID := idx.New().String()

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		artist, err := getOrCreateArtist(ctx, tx, in.ArtistName)
		if err != nil {
			return err
		}

		genre, err := getOrCreateGenre(ctx, tx, in.GenreName)
		if err != nil {
			return err
		}

		return tx.Albums().CreateAlbum(ctx, domain.Album{
			ID:              albumID,
			CollectionID:    collectionID,
			Title:           in.Title,
			ArtistID:        artist.ID,
			GenreID:         genre.ID,
			ReleaseYear:     in.ReleaseYear,
			Description:     strings.TrimSpace(in.Description),
			CoverCondition:  in.CoverCondition,
			RecordCondition: in.RecordCondition,
		})
	})
	if err != nil {
		return domain.Album{}, err
	}

	return s.Store.Albums().GetAlbumByID(ctx, albumID)
}

// List returns the albums of a collection the caller may see (owned or
// public).
func (s *AlbumService) List(ctx context.Context, callerUUID, collectionID string) ([]domain.Album, error) {
	caller, err := resolveCaller(ctx, s.Store, callerUUID)
	if err != nil {
		return nil, err
	}

	c, err := s.Store.Collections().GetCollectionByID(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	if c.OwnerID != caller.ID && !c.IsPublic {
		return nil, store.ErrNotFound
	}

	return s.Store.Albums().ListAlbumsByCollection(ctx, collectionID)
}

// ListArtists serves the public artist index.
func (s *AlbumService) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	return s.Store.Artists().ListArtists(ctx)
}

// ListGenres serves the public genre index.
func (s *AlbumService) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	return s.Store.Genres().ListGenres(ctx)
}

// visibleAlbum resolves an album the caller may see via its collection's
// visibility. Used by the rating, loan and wishlist paths.
func visibleAlbum(ctx context.Context, st store.Store, callerID, albumID string) (domain.Album, error) {
	a, err := st.Albums().GetAlbumByID(ctx, albumID)
	if err != nil {
		return domain.Album{}, err
	}

	c, err := st.Collections().GetCollectionByID(ctx, a.CollectionID)
	if err != nil {
		return domain.Album{}, err
	}
	if c.OwnerID != callerID && !c.IsPublic {
		return domain.Album{}, store.ErrNotFound
	}

	return a, nil
}

func getOrCreateArtist(ctx context.Context, tx store.Tx, name string) (domain.Artist, error) {
	artist, err := tx.Artists().GetArtistByName(ctx, name)
	if err == nil {
		return artist, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Artist{}, err
	}

	artist = domain.Artist{ID: idx.New().String(), Name: name}
	if err := tx.Artists().CreateArtist(ctx, artist); err != nil {
		return domain.Artist{}, err
	}
	return artist, nil
}

func getOrCreateGenre(ctx context.Context, tx store.Tx, name string) (domain.Genre, error) {
	genre, err := tx.Genres().GetGenreByName(ctx, name)
	if err == nil {
		return genre, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Genre{}, err
	}

	genre = domain.Genre{ID: idx.New().String(), Name: name}
	if err := tx.Genres().CreateGenre(ctx, genre); err != nil {
		return domain.Genre{}, err
	}
	return genre, nil
}
