package db

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
)

const getSubtaskForUserQuery = `
SELECT s.id, s.task_id, s.title, s.completed, s.created_at, s.updated_at
FROM subtasks s
JOIN tasks t ON t.id = s.task_id
JOIN task_lists tl ON tl.id = t.task_list_id
JOIN boards b ON b.id = tl.board_id
JOIN workspaces w ON w.id = b.workspace_id
WHERE s.id = ? AND w.user_id = ?
`

type SubtaskRepository struct {
	db *sqlx.DB
}

var _ ports.SubtaskRepository = (*SubtaskRepository)(nil)

func NewSubtaskRepository(db *sqlx.DB) *SubtaskRepository {
	return &SubtaskRepository{db: db}
}

func (r *SubtaskRepository) Create(ctx context.Context, input domain.CreateSubtaskInput) (domain.Subtask, error) {
	exec := conn(ctx, r.db)
	result, err := exec.ExecContext(ctx, "INSERT INTO subtasks (task_id, title) VALUES (?, ?)", input.TaskID, input.Title)
	if err != nil {
		return domain.Subtask{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return domain.Subtask{}, err
	}

	var row subtaskRow
	if err := exec.GetContext(ctx, &row, "SELECT id, task_id, title, completed, created_at, updated_at FROM subtasks WHERE id = ?", id); err != nil {
		return domain.Subtask{}, err
	}
	return mapSubtaskRow(row), nil
}

func (r *SubtaskRepository) GetForUser(ctx context.Context, id, userID uint64) (domain.Subtask, error) {
	var row subtaskRow
	if err := conn(ctx, r.db).GetContext(ctx, &row, getSubtaskForUserQuery, id, userID); err != nil {
		return domain.Subtask{}, notFound(err, domain.ErrSubtaskNotFound)
	}
	return mapSubtaskRow(row), nil
}

func (r *SubtaskRepository) Update(ctx context.Context, id uint64, input domain.UpdateSubtaskInput) error {
	fields := sq.Eq{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Completed != nil {
		fields["completed"] = *input.Completed
	}
	if len(fields) == 0 {
		return nil
	}

	query, args, err := sq.Update("subtasks").SetMap(fields).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build subtask update: %w", err)
	}
	_, err = conn(ctx, r.db).ExecContext(ctx, query, args...)
	return err
}

func (r *SubtaskRepository) Delete(ctx context.Context, id uint64) error {
	result, err := conn(ctx, r.db).ExecContext(ctx, "DELETE FROM subtasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrSubtaskNotFound)
}
