package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
	"nestodo/internal/core/sequencer"
)

const selectTaskQuery = `
SELECT t.id, t.task_list_id, t.title, t.description, t.priority, t.completed, t.duration, t.position, t.created_at, t.updated_at
FROM tasks t
JOIN task_lists tl ON tl.id = t.task_list_id
JOIN boards b ON b.id = tl.board_id
JOIN workspaces w ON w.id = b.workspace_id
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	TaskListID  uint64         `db:"task_list_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Priority    sql.NullString `db:"priority"`
	Completed   bool           `db:"completed"`
	Duration    sql.NullInt64  `db:"duration"`
	Position    int            `db:"position"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput, position int) (domain.Task, error) {
	exec := conn(ctx, r.db)

	var priority sql.NullString
	if input.Priority != nil {
		priority = sql.NullString{String: string(*input.Priority), Valid: true}
	}
	var duration sql.NullInt64
	if input.Duration != nil {
		duration = sql.NullInt64{Int64: int64(*input.Duration), Valid: true}
	}

	result, err := exec.ExecContext(ctx,
		"INSERT INTO tasks (task_list_id, title, description, priority, duration, position) VALUES (?, ?, ?, ?, ?, ?)",
		input.TaskListID, input.Title, nullString(input.Description), priority, duration, position,
	)
	if err != nil {
		return domain.Task{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	var row taskRow
	if err := exec.GetContext(ctx, &row, selectTaskQuery+"WHERE t.id = ?", id); err != nil {
		return domain.Task{}, err
	}
	task := mapTaskRow(row)
	task.Tags = []string{}
	task.Subtasks = []domain.Subtask{}
	task.Attachments = []domain.Attachment{}
	return task, nil
}

func (r *TaskRepository) GetForUser(ctx context.Context, id, userID uint64) (domain.Task, error) {
	return r.getOne(ctx, selectTaskQuery+"WHERE t.id = ? AND w.user_id = ?", id, userID)
}

func (r *TaskRepository) GetInListForUser(ctx context.Context, id, taskListID, userID uint64) (domain.Task, error) {
	return r.getOne(ctx, selectTaskQuery+"WHERE t.id = ? AND t.task_list_id = ? AND w.user_id = ?", id, taskListID, userID)
}

func (r *TaskRepository) LoadForUser(ctx context.Context, id, userID uint64) (domain.Task, error) {
	task, err := r.GetForUser(ctx, id, userID)
	if err != nil {
		return domain.Task{}, err
	}
	tasks := []domain.Task{task}
	if err := loadTaskDetails(ctx, conn(ctx, r.db), tasks); err != nil {
		return domain.Task{}, err
	}
	return tasks[0], nil
}

func (r *TaskRepository) getOne(ctx context.Context, query string, args ...interface{}) (domain.Task, error) {
	var row taskRow
	if err := conn(ctx, r.db).GetContext(ctx, &row, query, args...); err != nil {
		return domain.Task{}, notFound(err, domain.ErrTaskNotFound)
	}
	return mapTaskRow(row), nil
}

func (r *TaskRepository) ListPositions(ctx context.Context, taskListID uint64) ([]sequencer.Item, error) {
	return listPositions(ctx, conn(ctx, r.db), "tasks", "task_list_id", taskListID)
}

// Update writes the scalar fields present in input. Tags are handled by
// SetTags.
func (r *TaskRepository) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) error {
	fields := sq.Eq{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.DescriptionSet {
		fields["description"] = nullString(input.Description)
	}
	if input.PrioritySet {
		var priority sql.NullString
		if input.Priority != nil {
			priority = sql.NullString{String: string(*input.Priority), Valid: true}
		}
		fields["priority"] = priority
	}
	if input.Completed != nil {
		fields["completed"] = *input.Completed
	}
	if input.DurationSet {
		var duration sql.NullInt64
		if input.Duration != nil {
			duration = sql.NullInt64{Int64: int64(*input.Duration), Valid: true}
		}
		fields["duration"] = duration
	}
	if len(fields) == 0 {
		return nil
	}

	query, args, err := sq.Update("tasks").SetMap(fields).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build task update: %w", err)
	}
	_, err = conn(ctx, r.db).ExecContext(ctx, query, args...)
	return err
}

func (r *TaskRepository) SetTags(ctx context.Context, id uint64, tagIDs []uint64) error {
	exec := conn(ctx, r.db)
	if _, err := exec.ExecContext(ctx, "DELETE FROM task_tags WHERE task_id = ?", id); err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}

	insert := sq.Insert("task_tags").Columns("task_id", "tag_id")
	for _, tagID := range tagIDs {
		insert = insert.Values(id, tagID)
	}
	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build task tags insert: %w", err)
	}
	_, err = exec.ExecContext(ctx, query, args...)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	result, err := conn(ctx, r.db).ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrTaskNotFound)
}

func (r *TaskRepository) ApplyPositions(ctx context.Context, taskListID uint64, assignments []sequencer.Assignment) error {
	return applyPositions(ctx, conn(ctx, r.db), "tasks", "task_list_id", taskListID, assignments)
}

func mapTaskRow(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		TaskListID:  row.TaskListID,
		Title:       row.Title,
		Description: stringPtr(row.Description),
		Completed:   row.Completed,
		Position:    row.Position,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if row.Priority.Valid {
		value := domain.TaskPriority(row.Priority.String)
		task.Priority = &value
	}

	if row.Duration.Valid {
		value := int(row.Duration.Int64)
		task.Duration = &value
	}

	return task
}
