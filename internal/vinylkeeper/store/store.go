package store

import (
	"context"
	"errors"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to actively stop people from accidentally nesting
// transactions.
type Store interface {
	Users() Users
	Collections() Collections
	Albums() Albums
	Artists() Artists
	Genres() Genres
	Ratings() Ratings
	Loans() Loans
	Wishlists() Wishlists

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step writes.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByEmail is used during login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByUUID resolves a token subject back to a principal.
	GetUserByUUID(ctx context.Context, userUUID string) (domain.User, error)

	// CreateUser inserts a new user (id is a ULID, user_uuid a UUID, both
	// provided by the app).
	CreateUser(ctx context.Context, u domain.User) error
}

type Collections interface {
	CreateCollection(ctx context.Context, c domain.Collection) error
	GetCollectionByID(ctx context.Context, id string) (domain.Collection, error)
	ListCollectionsByOwner(ctx context.Context, ownerID string) ([]domain.Collection, error)

	// DeleteCollection cascades to albums (per schema).
	DeleteCollection(ctx context.Context, id string) error
}

type Albums interface {
	CreateAlbum(ctx context.Context, a domain.Album) error
	GetAlbumByID(ctx context.Context, id string) (domain.Album, error)
	ListAlbumsByCollection(ctx context.Context, collectionID string) ([]domain.Album, error)
	DeleteAlbum(ctx context.Context, id string) error
}

type Artists interface {
	CreateArtist(ctx context.Context, a domain.Artist) error
	GetArtistByID(ctx context.Context, id string) (domain.Artist, error)
	GetArtistByName(ctx context.Context, name string) (domain.Artist, error)
	ListArtists(ctx context.Context) ([]domain.Artist, error)
}

type Genres interface {
	CreateGenre(ctx context.Context, g domain.Genre) error
	GetGenreByID(ctx context.Context, id string) (domain.Genre, error)
	GetGenreByName(ctx context.Context, name string) (domain.Genre, error)
	ListGenres(ctx context.Context) ([]domain.Genre, error)
}

type Ratings interface {
	// UpsertRating inserts or replaces the user's rating for an album.
	UpsertRating(ctx context.Context, r domain.Rating) error
	ListRatingsByAlbum(ctx context.Context, albumID string) ([]domain.Rating, error)
}

type Loans interface {
	CreateLoan(ctx context.Context, l domain.Loan) error
	GetLoanByID(ctx context.Context, id string) (domain.Loan, error)

	// GetOpenLoanByAlbum returns the loan with no return date for an album.
	GetOpenLoanByAlbum(ctx context.Context, albumID string) (domain.Loan, error)

	// ReturnLoan stamps returned_at on an open loan.
	ReturnLoan(ctx context.Context, id string) error

	ListLoansByUser(ctx context.Context, userID string) ([]domain.Loan, error)
}

type Wishlists interface {
	AddWishlistEntry(ctx context.Context, e domain.WishlistEntry) error
	DeleteWishlistEntry(ctx context.Context, id string, userID string) error
	ListWishlistByUser(ctx context.Context, userID string) ([]domain.WishlistEntry, error)
}
