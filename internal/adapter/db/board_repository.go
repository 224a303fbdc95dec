package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
	"nestodo/internal/core/sequencer"
)

const getBoardForUserQuery = `
SELECT b.id, b.workspace_id, b.title, b.created_at, b.updated_at
FROM boards b
JOIN workspaces w ON w.id = b.workspace_id
WHERE b.id = ? AND w.user_id = ?
`

const listBoardTaskListsQuery = `
SELECT id, board_id, title, position, created_at, updated_at
FROM task_lists
WHERE board_id = ?
ORDER BY position, id
`

const listBoardTasksQuery = `
SELECT t.id, t.task_list_id, t.title, t.description, t.priority, t.completed, t.duration, t.position, t.created_at, t.updated_at
FROM tasks t
JOIN task_lists tl ON tl.id = t.task_list_id
WHERE tl.board_id = ?
ORDER BY t.task_list_id, t.position, t.id
`

// BoardRepository is the board aggregate repository.
type BoardRepository struct {
	db *sqlx.DB
}

type boardRow struct {
	ID          uint64    `db:"id"`
	WorkspaceID uint64    `db:"workspace_id"`
	Title       string    `db:"title"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

var _ ports.BoardRepository = (*BoardRepository)(nil)

func NewBoardRepository(db *sqlx.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Create(ctx context.Context, workspaceID uint64, title string) (domain.Board, error) {
	exec := conn(ctx, r.db)
	result, err := exec.ExecContext(ctx,
		"INSERT INTO boards (workspace_id, title) VALUES (?, ?)",
		workspaceID, title,
	)
	if err != nil {
		return domain.Board{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return domain.Board{}, err
	}

	var row boardRow
	if err := exec.GetContext(ctx, &row,
		"SELECT id, workspace_id, title, created_at, updated_at FROM boards WHERE id = ?",
		id,
	); err != nil {
		return domain.Board{}, err
	}
	board := mapBoardRow(row)
	board.TaskLists = []domain.TaskList{}
	return board, nil
}

func (r *BoardRepository) GetForUser(ctx context.Context, id, userID uint64) (domain.Board, error) {
	var row boardRow
	if err := conn(ctx, r.db).GetContext(ctx, &row, getBoardForUserQuery, id, userID); err != nil {
		return domain.Board{}, notFound(err, domain.ErrBoardNotFound)
	}
	return mapBoardRow(row), nil
}

// LoadBoardForUser loads the bounded aggregate
// Board -> TaskLists -> Tasks -> {Subtasks, Attachments, Tags}, every level
// ordered by position.
func (r *BoardRepository) LoadBoardForUser(ctx context.Context, id, userID uint64) (domain.Board, error) {
	board, err := r.GetForUser(ctx, id, userID)
	if err != nil {
		return domain.Board{}, err
	}
	exec := conn(ctx, r.db)

	var listRows []taskListRow
	if err := exec.SelectContext(ctx, &listRows, listBoardTaskListsQuery, id); err != nil {
		return domain.Board{}, err
	}

	var taskRows []taskRow
	if err := exec.SelectContext(ctx, &taskRows, listBoardTasksQuery, id); err != nil {
		return domain.Board{}, err
	}
	tasks := make([]domain.Task, 0, len(taskRows))
	for _, row := range taskRows {
		tasks = append(tasks, mapTaskRow(row))
	}
	if err := loadTaskDetails(ctx, exec, tasks); err != nil {
		return domain.Board{}, err
	}

	byList := make(map[uint64][]domain.Task, len(listRows))
	for _, task := range tasks {
		byList[task.TaskListID] = append(byList[task.TaskListID], task)
	}

	board.TaskLists = make([]domain.TaskList, 0, len(listRows))
	for _, row := range listRows {
		taskList := mapTaskListRow(row)
		taskList.Tasks = byList[row.ID]
		if taskList.Tasks == nil {
			taskList.Tasks = []domain.Task{}
		}
		board.TaskLists = append(board.TaskLists, taskList)
	}
	return board, nil
}

// LoadTaskListsForBoard is the lightweight projection used to validate and
// compute reorders. Inside a transaction the rows are locked.
func (r *BoardRepository) LoadTaskListsForBoard(ctx context.Context, boardID uint64) ([]sequencer.Item, error) {
	return listPositions(ctx, conn(ctx, r.db), "task_lists", "board_id", boardID)
}

func (r *BoardRepository) Lock(ctx context.Context, id uint64) error {
	return lockRows(ctx, r.db, "boards", id)
}

func (r *BoardRepository) UpdateTitle(ctx context.Context, id uint64, title string) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, "UPDATE boards SET title = ? WHERE id = ?", title, id)
	return err
}

func (r *BoardRepository) Delete(ctx context.Context, id uint64) error {
	result, err := conn(ctx, r.db).ExecContext(ctx, "DELETE FROM boards WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrBoardNotFound)
}

func mapBoardRow(row boardRow) domain.Board {
	return domain.Board{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		Title:       row.Title,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
