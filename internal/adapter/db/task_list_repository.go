package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
	"nestodo/internal/core/sequencer"
)

const getTaskListForUserQuery = `
SELECT tl.id, tl.board_id, tl.title, tl.position, tl.created_at, tl.updated_at
FROM task_lists tl
JOIN boards b ON b.id = tl.board_id
JOIN workspaces w ON w.id = b.workspace_id
WHERE tl.id = ? AND w.user_id = ?
`

type TaskListRepository struct {
	db *sqlx.DB
}

type taskListRow struct {
	ID        uint64    `db:"id"`
	BoardID   uint64    `db:"board_id"`
	Title     string    `db:"title"`
	Position  int       `db:"position"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var _ ports.TaskListRepository = (*TaskListRepository)(nil)

func NewTaskListRepository(db *sqlx.DB) *TaskListRepository {
	return &TaskListRepository{db: db}
}

func (r *TaskListRepository) Create(ctx context.Context, input domain.CreateTaskListInput, position int) (domain.TaskList, error) {
	exec := conn(ctx, r.db)
	result, err := exec.ExecContext(ctx,
		"INSERT INTO task_lists (board_id, title, position) VALUES (?, ?, ?)",
		input.BoardID, input.Title, position,
	)
	if err != nil {
		return domain.TaskList{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return domain.TaskList{}, err
	}

	var row taskListRow
	if err := exec.GetContext(ctx, &row,
		"SELECT id, board_id, title, position, created_at, updated_at FROM task_lists WHERE id = ?",
		id,
	); err != nil {
		return domain.TaskList{}, err
	}
	taskList := mapTaskListRow(row)
	taskList.Tasks = []domain.Task{}
	return taskList, nil
}

func (r *TaskListRepository) GetForUser(ctx context.Context, id, userID uint64) (domain.TaskList, error) {
	var row taskListRow
	if err := conn(ctx, r.db).GetContext(ctx, &row, getTaskListForUserQuery, id, userID); err != nil {
		return domain.TaskList{}, notFound(err, domain.ErrTaskListNotFound)
	}
	return mapTaskListRow(row), nil
}

func (r *TaskListRepository) Lock(ctx context.Context, ids ...uint64) error {
	return lockRows(ctx, r.db, "task_lists", ids...)
}

func (r *TaskListRepository) UpdateTitle(ctx context.Context, id uint64, title string) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, "UPDATE task_lists SET title = ? WHERE id = ?", title, id)
	return err
}

func (r *TaskListRepository) Delete(ctx context.Context, id uint64) error {
	result, err := conn(ctx, r.db).ExecContext(ctx, "DELETE FROM task_lists WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrTaskListNotFound)
}

func (r *TaskListRepository) ApplyPositions(ctx context.Context, assignments []sequencer.Assignment) error {
	return applyPositions(ctx, conn(ctx, r.db), "task_lists", "", 0, assignments)
}

func mapTaskListRow(row taskListRow) domain.TaskList {
	return domain.TaskList{
		ID:        row.ID,
		BoardID:   row.BoardID,
		Title:     row.Title,
		Position:  row.Position,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
