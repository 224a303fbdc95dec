package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"nestodo/internal/core/domain"
)

const listSubtasksByTaskQuery = `
SELECT id, task_id, title, completed, created_at, updated_at
FROM subtasks
WHERE task_id IN (?)
ORDER BY id
`

const listAttachmentsByTaskQuery = `
SELECT id, task_id, original_file_name, file_name, size, content_type, created_at
FROM attachments
WHERE task_id IN (?)
ORDER BY id
`

const listTagsByTaskQuery = `
SELECT tt.task_id, wt.name
FROM task_tags tt
JOIN workspace_tags wt ON wt.id = tt.tag_id
WHERE tt.task_id IN (?)
ORDER BY wt.name
`

type taskTagRow struct {
	TaskID uint64 `db:"task_id"`
	Name   string `db:"name"`
}

// loadTaskDetails fills subtasks, attachments and tags of tasks in place,
// one query per relation.
func loadTaskDetails(ctx context.Context, exec executor, tasks []domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	ids := make([]uint64, 0, len(tasks))
	index := make(map[uint64]int, len(tasks))
	for i := range tasks {
		ids = append(ids, tasks[i].ID)
		index[tasks[i].ID] = i
		tasks[i].Tags = []string{}
		tasks[i].Subtasks = []domain.Subtask{}
		tasks[i].Attachments = []domain.Attachment{}
	}

	var subtasks []subtaskRow
	if err := selectIn(ctx, exec, &subtasks, listSubtasksByTaskQuery, ids); err != nil {
		return err
	}
	for _, row := range subtasks {
		i := index[row.TaskID]
		tasks[i].Subtasks = append(tasks[i].Subtasks, mapSubtaskRow(row))
	}

	var attachments []attachmentRow
	if err := selectIn(ctx, exec, &attachments, listAttachmentsByTaskQuery, ids); err != nil {
		return err
	}
	for _, row := range attachments {
		i := index[row.TaskID]
		tasks[i].Attachments = append(tasks[i].Attachments, mapAttachmentRow(row))
	}

	var tags []taskTagRow
	if err := selectIn(ctx, exec, &tags, listTagsByTaskQuery, ids); err != nil {
		return err
	}
	for _, row := range tags {
		i := index[row.TaskID]
		tasks[i].Tags = append(tasks[i].Tags, row.Name)
	}

	return nil
}

func selectIn(ctx context.Context, exec executor, dest interface{}, query string, ids []uint64) error {
	query, args, err := sqlx.In(query, ids)
	if err != nil {
		return err
	}
	return exec.SelectContext(ctx, dest, exec.Rebind(query), args...)
}

type subtaskRow struct {
	ID        uint64    `db:"id"`
	TaskID    uint64    `db:"task_id"`
	Title     string    `db:"title"`
	Completed bool      `db:"completed"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type attachmentRow struct {
	ID               uint64    `db:"id"`
	TaskID           uint64    `db:"task_id"`
	OriginalFileName string    `db:"original_file_name"`
	FileName         string    `db:"file_name"`
	Size             int64     `db:"size"`
	ContentType      string    `db:"content_type"`
	CreatedAt        time.Time `db:"created_at"`
}

func mapSubtaskRow(row subtaskRow) domain.Subtask {
	return domain.Subtask{
		ID:        row.ID,
		TaskID:    row.TaskID,
		Title:     row.Title,
		Completed: row.Completed,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func mapAttachmentRow(row attachmentRow) domain.Attachment {
	return domain.Attachment{
		ID:               row.ID,
		TaskID:           row.TaskID,
		OriginalFileName: row.OriginalFileName,
		FileName:         row.FileName,
		Size:             row.Size,
		ContentType:      row.ContentType,
		CreatedAt:        row.CreatedAt,
	}
}
