package sqlite

import (
	"context"
	"database/sql"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
)

type albumsRepo struct {
	db dbtx
}

const albumColumns = `id, collection_id, title, artist_id, genre_id,
	release_year, description, cover_condition, record_condition,
	created_at, updated_at`

func (r *albumsRepo) CreateAlbum(ctx context.Context, a domain.Album) error {
	var year sql.NullInt64
	if a.ReleaseYear != nil {
		year = sql.NullInt64{Int64: int64(*a.ReleaseYear), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO albums (
			id, collection_id, title, artist_id, genre_id,
			release_year, description, cover_condition, record_condition
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.CollectionID, a.Title, a.ArtistID, a.GenreID,
		year, a.Description, string(a.CoverCondition), string(a.RecordCondition),
	)
	return err
}

func (r *albumsRepo) GetAlbumByID(ctx context.Context, id string) (domain.Album, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+albumColumns+` FROM albums WHERE id = ?`, id)
	return scanAlbum(row)
}

func (r *albumsRepo) ListAlbumsByCollection(ctx context.Context, collectionID string) ([]domain.Album, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+albumColumns+` FROM albums WHERE collection_id = ? ORDER BY created_at DESC`,
		collectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Album
	for rows.Next() {
		a, err := scanAlbumRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *albumsRepo) DeleteAlbum(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM albums WHERE id = ?`, id)
	return err
}

func scanAlbum(row *sql.Row) (domain.Album, error) {
	var a domain.Album
	var year sql.NullInt64
	var cover, record string

	err := row.Scan(
		&a.ID, &a.CollectionID, &a.Title, &a.ArtistID, &a.GenreID,
		&year, &a.Description, &cover, &record, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Album{}, mapNotFound(err)
	}

	a.ReleaseYear = mapOptionalInt(year)
	a.CoverCondition = domain.Condition(cover)
	a.RecordCondition = domain.Condition(record)
	return a, nil
}

func scanAlbumRows(rows *sql.Rows) (domain.Album, error) {
	var a domain.Album
	var year sql.NullInt64
	var cover, record string

	err := rows.Scan(
		&a.ID, &a.CollectionID, &a.Title, &a.ArtistID, &a.GenreID,
		&year, &a.Description, &cover, &record, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Album{}, err
	}

	a.ReleaseYear = mapOptionalInt(year)
	a.CoverCondition = domain.Condition(cover)
	a.RecordCondition = domain.Condition(record)
	return a, nil
}
