package sqlite

import (
	"context"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
)

type artistsRepo struct {
	db dbtx
}

func (r *artistsRepo) CreateArtist(ctx context.Context, a domain.Artist) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO artists (id, name, country, biography)
		VALUES (?, ?, ?, ?)`,
		a.ID, a.Name, a.Country, a.Biography,
	)
	return err
}

func (r *artistsRepo) GetArtistByID(ctx context.Context, id string) (domain.Artist, error) {
	var a domain.Artist
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, country, biography FROM artists WHERE id = ?`, id,
	).Scan(&a.ID, &a.Name, &a.Country, &a.Biography)
	if err != nil {
		return domain.Artist{}, mapNotFound(err)
	}
	return a, nil
}

func (r *artistsRepo) GetArtistByName(ctx context.Context, name string) (domain.Artist, error) {
	var a domain.Artist
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, country, biography FROM artists WHERE name = ?`, name,
	).Scan(&a.ID, &a.Name, &a.Country, &a.Biography)
	if err != nil {
		return domain.Artist{}, mapNotFound(err)
	}
	return a, nil
}

func (r *artistsRepo) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, country, biography FROM artists ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Artist
	for rows.Next() {
		var a domain.Artist
		if err := rows.Scan(&a.ID, &a.Name, &a.Country, &a.Biography); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type genresRepo struct {
	db dbtx
}

func (r *genresRepo) CreateGenre(ctx context.Context, g domain.Genre) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO genres (id, name) VALUES (?, ?)`, g.ID, g.Name)
	return err
}

func (r *genresRepo) GetGenreByID(ctx context.Context, id string) (domain.Genre, error) {
	var g domain.Genre
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name FROM genres WHERE id = ?`, id,
	).Scan(&g.ID, &g.Name)
	if err != nil {
		return domain.Genre{}, mapNotFound(err)
	}
	return g, nil
}

func (r *genresRepo) GetGenreByName(ctx context.Context, name string) (domain.Genre, error) {
	var g domain.Genre
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name FROM genres WHERE name = ?`, name,
	).Scan(&g.ID, &g.Name)
	if err != nil {
		return domain.Genre{}, mapNotFound(err)
	}
	return g, nil
}

func (r *genresRepo) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name FROM genres ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Genre
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
