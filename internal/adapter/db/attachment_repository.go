package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
)

const getAttachmentForUserQuery = `
SELECT a.id, a.task_id, a.original_file_name, a.file_name, a.size, a.content_type, a.created_at
FROM attachments a
JOIN tasks t ON t.id = a.task_id
JOIN task_lists tl ON tl.id = t.task_list_id
JOIN boards b ON b.id = tl.board_id
JOIN workspaces w ON w.id = b.workspace_id
WHERE a.id = ? AND w.user_id = ?
`

type AttachmentRepository struct {
	db *sqlx.DB
}

var _ ports.AttachmentRepository = (*AttachmentRepository)(nil)

func NewAttachmentRepository(db *sqlx.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

func (r *AttachmentRepository) Create(ctx context.Context, input domain.CreateAttachmentInput) (domain.Attachment, error) {
	exec := conn(ctx, r.db)
	result, err := exec.ExecContext(ctx,
		"INSERT INTO attachments (task_id, original_file_name, file_name, size, content_type) VALUES (?, ?, ?, ?, ?)",
		input.TaskID, input.OriginalFileName, input.FileName, input.Size, input.ContentType,
	)
	if err != nil {
		return domain.Attachment{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return domain.Attachment{}, err
	}

	var row attachmentRow
	if err := exec.GetContext(ctx, &row,
		"SELECT id, task_id, original_file_name, file_name, size, content_type, created_at FROM attachments WHERE id = ?", id,
	); err != nil {
		return domain.Attachment{}, err
	}
	return mapAttachmentRow(row), nil
}

func (r *AttachmentRepository) GetForUser(ctx context.Context, id, userID uint64) (domain.Attachment, error) {
	var row attachmentRow
	if err := conn(ctx, r.db).GetContext(ctx, &row, getAttachmentForUserQuery, id, userID); err != nil {
		return domain.Attachment{}, notFound(err, domain.ErrAttachmentNotFound)
	}
	return mapAttachmentRow(row), nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, id uint64) error {
	result, err := conn(ctx, r.db).ExecContext(ctx, "DELETE FROM attachments WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrAttachmentNotFound)
}
