package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nestodo/internal/adapter/http/dto"
	"nestodo/internal/adapter/http/mapper"
	"nestodo/internal/adapter/http/validation"
	"nestodo/internal/core/ports"
	"nestodo/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailTask, "failed to create task", zap.Uint64("task_list_id", req.TaskListID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailTask, "failed to get task", zap.Uint64("task_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	raw, err := bindPartial(c, &req)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), id, userID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailTask, "failed to update task", zap.Uint64("task_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) MoveTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	task, err := h.taskService.MoveTask(c.Request.Context(), id, userID, validation.BuildMoveTaskInput(req))
	if err != nil {
		respondError(c, err, apierrors.MsgFailTask, "failed to move task",
			zap.Uint64("task_id", id),
			zap.Uint64("source_task_list_id", req.SourceTaskListID),
			zap.Uint64("destination_task_list_id", req.DestinationTaskListID),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), id, userID); err != nil {
		respondError(c, err, apierrors.MsgFailTask, "failed to delete task", zap.Uint64("task_id", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
