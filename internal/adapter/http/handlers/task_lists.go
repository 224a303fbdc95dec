package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nestodo/internal/adapter/http/dto"
	"nestodo/internal/adapter/http/mapper"
	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
	"nestodo/pkg/apierrors"
)

type TaskListHandler struct {
	taskListService ports.TaskListService
}

func NewTaskListHandler(taskListService ports.TaskListService) *TaskListHandler {
	return &TaskListHandler{taskListService: taskListService}
}

func (h *TaskListHandler) CreateTaskList(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateTaskListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	list, err := h.taskListService.CreateTaskList(c.Request.Context(), userID, domain.CreateTaskListInput{
		BoardID: req.BoardID,
		Title:   req.Title,
	})
	if err != nil {
		respondError(c, err, apierrors.MsgFailTaskList, "failed to create task list", zap.Uint64("board_id", req.BoardID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskListItem(list))
}

func (h *TaskListHandler) UpdateTaskList(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.TitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	list, err := h.taskListService.UpdateTaskList(c.Request.Context(), id, userID, req.Title)
	if err != nil {
		respondError(c, err, apierrors.MsgFailTaskList, "failed to update task list", zap.Uint64("task_list_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskListItem(list))
}

func (h *TaskListHandler) DeleteTaskList(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.taskListService.DeleteTaskList(c.Request.Context(), id, userID); err != nil {
		respondError(c, err, apierrors.MsgFailTaskList, "failed to delete task list", zap.Uint64("task_list_id", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
