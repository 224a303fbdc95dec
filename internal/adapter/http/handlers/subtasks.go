package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nestodo/internal/adapter/http/dto"
	"nestodo/internal/adapter/http/mapper"
	"nestodo/internal/adapter/http/validation"
	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
	"nestodo/pkg/apierrors"
)

type SubtaskHandler struct {
	subtaskService ports.SubtaskService
}

func NewSubtaskHandler(subtaskService ports.SubtaskService) *SubtaskHandler {
	return &SubtaskHandler{subtaskService: subtaskService}
}

func (h *SubtaskHandler) CreateSubtask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	subtask, err := h.subtaskService.CreateSubtask(c.Request.Context(), userID, domain.CreateSubtaskInput{
		TaskID: req.TaskID,
		Title:  req.Title,
	})
	if err != nil {
		respondError(c, err, apierrors.MsgFailSubtask, "failed to create subtask", zap.Uint64("task_id", req.TaskID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToSubtaskItem(subtask))
}

func (h *SubtaskHandler) GetSubtask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	subtask, err := h.subtaskService.GetSubtask(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailSubtask, "failed to get subtask", zap.Uint64("subtask_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubtaskItem(subtask))
}

func (h *SubtaskHandler) UpdateSubtask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubtaskRequest
	raw, err := bindPartial(c, &req)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	input, err := validation.BuildUpdateSubtaskInput(req, raw)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	subtask, err := h.subtaskService.UpdateSubtask(c.Request.Context(), id, userID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailSubtask, "failed to update subtask", zap.Uint64("subtask_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubtaskItem(subtask))
}

func (h *SubtaskHandler) DeleteSubtask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.subtaskService.DeleteSubtask(c.Request.Context(), id, userID); err != nil {
		respondError(c, err, apierrors.MsgFailSubtask, "failed to delete subtask", zap.Uint64("subtask_id", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
