package handlers

import (
	"errors"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nestodo/internal/adapter/http/mapper"
	"nestodo/internal/adapter/http/middleware"
	"nestodo/internal/core/ports"
	"nestodo/pkg/apierrors"
)

const attachmentFormField = "file"

type AttachmentHandler struct {
	attachmentService ports.AttachmentService
	maxUploadBytes    int64
}

func NewAttachmentHandler(attachmentService ports.AttachmentService, maxUploadBytes int64) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService, maxUploadBytes: maxUploadBytes}
}

func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	// Multipart framing adds a little on top of the file itself.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+1<<20)

	header, err := c.FormFile(attachmentFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.respondTooLarge(c, lang)
			return
		}
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgMissingFile, lang),
		)
		return
	}
	if header.Size > h.maxUploadBytes {
		h.respondTooLarge(c, lang)
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, err, apierrors.MsgFailAttachment, "failed to open uploaded file", zap.Uint64("task_id", taskID))
		return
	}
	defer file.Close()

	attachment, err := h.attachmentService.UploadAttachment(c.Request.Context(), userID, ports.AttachmentUpload{
		TaskID:      taskID,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		respondError(c, err, apierrors.MsgFailAttachment, "failed to upload attachment", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToAttachmentItem(attachment))
}

func (h *AttachmentHandler) GetAttachment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	attachment, err := h.attachmentService.GetAttachment(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailAttachment, "failed to get attachment", zap.Uint64("attachment_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToAttachmentItem(attachment))
}

func (h *AttachmentHandler) DownloadAttachment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	attachment, body, err := h.attachmentService.OpenAttachment(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailAttachment, "failed to open attachment", zap.Uint64("attachment_id", id))
		return
	}
	defer body.Close()

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": attachment.OriginalFileName})
	c.DataFromReader(http.StatusOK, attachment.Size, attachment.ContentType, body, map[string]string{
		"Content-Disposition": disposition,
	})
}

func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.attachmentService.DeleteAttachment(c.Request.Context(), id, userID); err != nil {
		respondError(c, err, apierrors.MsgFailAttachment, "failed to delete attachment", zap.Uint64("attachment_id", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AttachmentHandler) respondTooLarge(c *gin.Context, lang string) {
	c.JSON(
		http.StatusRequestEntityTooLarge,
		apierrors.CreateError(http.StatusRequestEntityTooLarge, apierrors.MsgFileTooLarge, lang,
			map[string]interface{}{"Max": h.maxUploadBytes}),
	)
}
