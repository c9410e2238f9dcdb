package sqlite

import (
	"context"
	"database/sql"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // caller commits/rolls back; the outer DB stays open

// Ping is a no-op for transactions; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users             { return &usersRepo{db: t.tx} }
func (t *txStore) Collections() store.Collections { return &collectionsRepo{db: t.tx} }
func (t *txStore) Albums() store.Albums           { return &albumsRepo{db: t.tx} }
func (t *txStore) Artists() store.Artists         { return &artistsRepo{db: t.tx} }
func (t *txStore) Genres() store.Genres           { return &genresRepo{db: t.tx} }
func (t *txStore) Ratings() store.Ratings         { return &ratingsRepo{db: t.tx} }
func (t *txStore) Loans() store.Loans             { return &loansRepo{db: t.tx} }
func (t *txStore) Wishlists() store.Wishlists     { return &wishlistsRepo{db: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx starts
