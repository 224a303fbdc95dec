package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
)

type TagRepository struct {
	db *sqlx.DB
}

var _ ports.TagRepository = (*TagRepository)(nil)

func NewTagRepository(db *sqlx.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) ListNames(ctx context.Context, workspaceID uint64) ([]string, error) {
	names := []string{}
	if err := conn(ctx, r.db).SelectContext(ctx, &names,
		"SELECT name FROM workspace_tags WHERE workspace_id = ? ORDER BY name", workspaceID,
	); err != nil {
		return nil, err
	}
	return names, nil
}

// Upsert returns the tag named name in the workspace, creating it when it
// does not exist yet. LAST_INSERT_ID(id) makes an existing row report its id.
func (r *TagRepository) Upsert(ctx context.Context, workspaceID uint64, name string) (domain.WorkspaceTag, error) {
	result, err := conn(ctx, r.db).ExecContext(ctx,
		"INSERT INTO workspace_tags (workspace_id, name) VALUES (?, ?) ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)",
		workspaceID, name,
	)
	if err != nil {
		return domain.WorkspaceTag{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return domain.WorkspaceTag{}, err
	}
	return domain.WorkspaceTag{ID: uint64(id), WorkspaceID: workspaceID, Name: name}, nil
}

func (r *TagRepository) Delete(ctx context.Context, workspaceID uint64, name string) error {
	result, err := conn(ctx, r.db).ExecContext(ctx,
		"DELETE FROM workspace_tags WHERE workspace_id = ? AND name = ?", workspaceID, name,
	)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrTagNotFound)
}
