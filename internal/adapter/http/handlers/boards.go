package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nestodo/internal/adapter/http/dto"
	"nestodo/internal/adapter/http/mapper"
	"nestodo/internal/core/ports"
	"nestodo/pkg/apierrors"
)

type BoardHandler struct {
	boardService ports.BoardService
}

func NewBoardHandler(boardService ports.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

func (h *BoardHandler) CreateBoard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), req.WorkspaceID, userID, req.Title)
	if err != nil {
		respondError(c, err, apierrors.MsgFailBoard, "failed to create board", zap.Uint64("workspace_id", req.WorkspaceID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToBoardItem(board))
}

// GetBoard returns the whole board aggregate, lists and tasks in position
// order.
func (h *BoardHandler) GetBoard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	board, err := h.boardService.GetBoard(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailBoard, "failed to load board", zap.Uint64("board_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToBoardItem(board))
}

func (h *BoardHandler) UpdateBoard(c *gin.Context) {
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

	board, err := h.boardService.UpdateBoard(c.Request.Context(), id, userID, req.Title)
	if err != nil {
		respondError(c, err, apierrors.MsgFailBoard, "failed to update board", zap.Uint64("board_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToBoardItem(board))
}

func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(c.Request.Context(), id, userID); err != nil {
		respondError(c, err, apierrors.MsgFailBoard, "failed to delete board", zap.Uint64("board_id", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *BoardHandler) ReorderTaskLists(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ReorderTaskListsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	board, err := h.boardService.ReorderTaskLists(c.Request.Context(), id, userID, req.TaskListIDs)
	if err != nil {
		respondError(c, err, apierrors.MsgFailBoard, "failed to reorder task lists", zap.Uint64("board_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToBoardItem(board))
}
