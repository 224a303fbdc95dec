package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
)

const listWorkspaceBoardsQuery = `
SELECT b.id, b.workspace_id, b.title, b.created_at, b.updated_at
FROM boards b
JOIN workspaces w ON w.id = b.workspace_id
WHERE w.user_id = ?
ORDER BY b.id
`

type WorkspaceRepository struct {
	db *sqlx.DB
}

type workspaceRow struct {
	ID        uint64    `db:"id"`
	UserID    uint64    `db:"user_id"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var _ ports.WorkspaceRepository = (*WorkspaceRepository)(nil)

func NewWorkspaceRepository(db *sqlx.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

func (r *WorkspaceRepository) Create(ctx context.Context, userID uint64, title string) (domain.Workspace, error) {
	result, err := conn(ctx, r.db).ExecContext(ctx,
		"INSERT INTO workspaces (user_id, title) VALUES (?, ?)",
		userID, title,
	)
	if err != nil {
		return domain.Workspace{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return domain.Workspace{}, err
	}
	return r.GetForUser(ctx, uint64(id), userID)
}

// ListForUser returns the user's workspaces with their boards (without task
// lists).
func (r *WorkspaceRepository) ListForUser(ctx context.Context, userID uint64) ([]domain.Workspace, error) {
	exec := conn(ctx, r.db)

	var rows []workspaceRow
	if err := exec.SelectContext(ctx, &rows,
		"SELECT id, user_id, title, created_at, updated_at FROM workspaces WHERE user_id = ? ORDER BY id",
		userID,
	); err != nil {
		return nil, err
	}

	var boards []boardRow
	if err := exec.SelectContext(ctx, &boards, listWorkspaceBoardsQuery, userID); err != nil {
		return nil, err
	}
	byWorkspace := make(map[uint64][]domain.Board, len(rows))
	for _, board := range boards {
		byWorkspace[board.WorkspaceID] = append(byWorkspace[board.WorkspaceID], mapBoardRow(board))
	}

	workspaces := make([]domain.Workspace, 0, len(rows))
	for _, row := range rows {
		workspace := mapWorkspaceRow(row)
		workspace.Boards = byWorkspace[row.ID]
		workspaces = append(workspaces, workspace)
	}
	return workspaces, nil
}

func (r *WorkspaceRepository) GetForUser(ctx context.Context, id, userID uint64) (domain.Workspace, error) {
	exec := conn(ctx, r.db)

	var row workspaceRow
	if err := exec.GetContext(ctx, &row,
		"SELECT id, user_id, title, created_at, updated_at FROM workspaces WHERE id = ? AND user_id = ?",
		id, userID,
	); err != nil {
		return domain.Workspace{}, notFound(err, domain.ErrWorkspaceNotFound)
	}

	var boards []boardRow
	if err := exec.SelectContext(ctx, &boards,
		"SELECT id, workspace_id, title, created_at, updated_at FROM boards WHERE workspace_id = ? ORDER BY id",
		id,
	); err != nil {
		return domain.Workspace{}, err
	}

	workspace := mapWorkspaceRow(row)
	for _, board := range boards {
		workspace.Boards = append(workspace.Boards, mapBoardRow(board))
	}
	return workspace, nil
}

func (r *WorkspaceRepository) UpdateTitle(ctx context.Context, id uint64, title string) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, "UPDATE workspaces SET title = ? WHERE id = ?", title, id)
	return err
}

func (r *WorkspaceRepository) Delete(ctx context.Context, id uint64) error {
	result, err := conn(ctx, r.db).ExecContext(ctx, "DELETE FROM workspaces WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrWorkspaceNotFound)
}

func mapWorkspaceRow(row workspaceRow) domain.Workspace {
	return domain.Workspace{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
