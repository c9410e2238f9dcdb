package sqlite

import (
	"context"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
)

type collectionsRepo struct {
	db dbtx
}

func (r *collectionsRepo) CreateCollection(ctx context.Context, c domain.Collection) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO collections (id, owner_id, name, description, is_public)
		VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.OwnerID, c.Name, c.Description, c.IsPublic,
	)
	return err
}

func (r *collectionsRepo) GetCollectionByID(ctx context.Context, id string) (domain.Collection, error) {
	var c domain.Collection
	err := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, name, description, is_public, created_at, updated_at
		FROM collections WHERE id = ?`, id,
	).Scan(&c.ID, &c.OwnerID, &c.Name, &c.Description, &c.IsPublic, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Collection{}, mapNotFound(err)
	}
	return c, nil
}

func (r *collectionsRepo) ListCollectionsByOwner(ctx context.Context, ownerID string) ([]domain.Collection, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, name, description, is_public, created_at, updated_at
		FROM collections WHERE owner_id = ? ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Collection
	for rows.Next() {
		var c domain.Collection
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Description, &c.IsPublic, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *collectionsRepo) DeleteCollection(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM collections WHERE id = ?`, id)
	return err
}
