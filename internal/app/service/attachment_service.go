package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
)

type AttachmentService struct {
	tasks       ports.TaskRepository
	attachments ports.AttachmentRepository
	storage     ports.FileStorage
}

func NewAttachmentService(tasks ports.TaskRepository, attachments ports.AttachmentRepository, storage ports.FileStorage) *AttachmentService {
	return &AttachmentService{tasks: tasks, attachments: attachments, storage: storage}
}

// UploadAttachment stores the body under a generated name and records it.
// The stored file is removed again when the row cannot be written.
func (s *AttachmentService) UploadAttachment(ctx context.Context, userID uint64, upload ports.AttachmentUpload) (domain.Attachment, error) {
	originalName := filepath.Base(strings.TrimSpace(upload.FileName))
	if originalName == "" || originalName == "." || originalName == string(filepath.Separator) {
		return domain.Attachment{}, domain.ErrEmptyFileName
	}
	if _, err := s.tasks.GetForUser(ctx, upload.TaskID, userID); err != nil {
		return domain.Attachment{}, err
	}

	storedName := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	size, err := s.storage.Save(ctx, storedName, upload.Body)
	if err != nil {
		return domain.Attachment{}, fmt.Errorf("store attachment: %w", err)
	}

	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	attachment, err := s.attachments.Create(ctx, domain.CreateAttachmentInput{
		TaskID:           upload.TaskID,
		OriginalFileName: originalName,
		FileName:         storedName,
		Size:             size,
		ContentType:      contentType,
	})
	if err != nil {
		if removeErr := s.storage.Remove(ctx, storedName); removeErr != nil {
			zap.L().Warn("failed to remove orphan attachment file", zap.String("file", storedName), zap.Error(removeErr))
		}
		return domain.Attachment{}, err
	}
	return attachment, nil
}

func (s *AttachmentService) GetAttachment(ctx context.Context, id, userID uint64) (domain.Attachment, error) {
	return s.attachments.GetForUser(ctx, id, userID)
}

// OpenAttachment returns the metadata and the stored body. The caller closes
// the reader.
func (s *AttachmentService) OpenAttachment(ctx context.Context, id, userID uint64) (domain.Attachment, io.ReadCloser, error) {
	attachment, err := s.attachments.GetForUser(ctx, id, userID)
	if err != nil {
		return domain.Attachment{}, nil, err
	}
	body, err := s.storage.Open(ctx, attachment.FileName)
	if err != nil {
		return domain.Attachment{}, nil, err
	}
	return attachment, body, nil
}

func (s *AttachmentService) DeleteAttachment(ctx context.Context, id, userID uint64) error {
	attachment, err := s.attachments.GetForUser(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := s.attachments.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Remove(ctx, attachment.FileName); err != nil {
		zap.L().Warn("failed to remove attachment file", zap.Uint64("attachment_id", id), zap.String("file", attachment.FileName), zap.Error(err))
	}
	return nil
}

var _ ports.AttachmentService = (*AttachmentService)(nil)
