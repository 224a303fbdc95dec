package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nestodo/internal/adapter/http/dto"
	"nestodo/internal/adapter/http/mapper"
	"nestodo/internal/core/ports"
	"nestodo/pkg/apierrors"
)

type WorkspaceHandler struct {
	workspaceService ports.WorkspaceService
	tagService       ports.TagService
}

func NewWorkspaceHandler(workspaceService ports.WorkspaceService, tagService ports.TagService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService, tagService: tagService}
}

func (h *WorkspaceHandler) CreateWorkspace(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.TitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	workspace, err := h.workspaceService.CreateWorkspace(c.Request.Context(), userID, req.Title)
	if err != nil {
		respondError(c, err, apierrors.MsgFailWorkspace, "failed to create workspace", zap.Uint64("user_id", userID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToWorkspaceItem(workspace))
}

func (h *WorkspaceHandler) ListWorkspaces(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	workspaces, err := h.workspaceService.ListWorkspaces(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailWorkspace, "failed to list workspaces", zap.Uint64("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToWorkspaceItems(workspaces))
}

func (h *WorkspaceHandler) GetWorkspace(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	workspace, err := h.workspaceService.GetWorkspace(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailWorkspace, "failed to get workspace", zap.Uint64("workspace_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToWorkspaceItem(workspace))
}

func (h *WorkspaceHandler) UpdateWorkspace(c *gin.Context) {
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

	workspace, err := h.workspaceService.UpdateWorkspace(c.Request.Context(), id, userID, req.Title)
	if err != nil {
		respondError(c, err, apierrors.MsgFailWorkspace, "failed to update workspace", zap.Uint64("workspace_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToWorkspaceItem(workspace))
}

func (h *WorkspaceHandler) DeleteWorkspace(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.workspaceService.DeleteWorkspace(c.Request.Context(), id, userID); err != nil {
		respondError(c, err, apierrors.MsgFailWorkspace, "failed to delete workspace", zap.Uint64("workspace_id", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *WorkspaceHandler) ListTags(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	tags, err := h.tagService.ListWorkspaceTags(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailTag, "failed to list workspace tags", zap.Uint64("workspace_id", id))
		return
	}

	c.JSON(http.StatusOK, tags)
}

func (h *WorkspaceHandler) CreateTag(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	name := strings.TrimSpace(req.Tag)
	if err := h.tagService.CreateWorkspaceTag(c.Request.Context(), id, userID, name); err != nil {
		respondError(c, err, apierrors.MsgFailTag, "failed to create workspace tag", zap.Uint64("workspace_id", id))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"tag": name})
}

func (h *WorkspaceHandler) DeleteTag(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.tagService.DeleteWorkspaceTag(c.Request.Context(), id, userID, c.Param("name")); err != nil {
		respondError(c, err, apierrors.MsgFailTag, "failed to delete workspace tag", zap.Uint64("workspace_id", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
