package service

import (
	"context"

	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
)

type WorkspaceService struct {
	workspaces ports.WorkspaceRepository
}

func NewWorkspaceService(workspaces ports.WorkspaceRepository) *WorkspaceService {
	return &WorkspaceService{workspaces: workspaces}
}

func (s *WorkspaceService) CreateWorkspace(ctx context.Context, userID uint64, title string) (domain.Workspace, error) {
	title, err := normalizeTitle(title)
	if err != nil {
		return domain.Workspace{}, err
	}
	return s.workspaces.Create(ctx, userID, title)
}

func (s *WorkspaceService) ListWorkspaces(ctx context.Context, userID uint64) ([]domain.Workspace, error) {
	return s.workspaces.ListForUser(ctx, userID)
}

func (s *WorkspaceService) GetWorkspace(ctx context.Context, id, userID uint64) (domain.Workspace, error) {
	return s.workspaces.GetForUser(ctx, id, userID)
}

func (s *WorkspaceService) UpdateWorkspace(ctx context.Context, id, userID uint64, title string) (domain.Workspace, error) {
	title, err := normalizeTitle(title)
	if err != nil {
		return domain.Workspace{}, err
	}
	if _, err := s.workspaces.GetForUser(ctx, id, userID); err != nil {
		return domain.Workspace{}, err
	}
	if err := s.workspaces.UpdateTitle(ctx, id, title); err != nil {
		return domain.Workspace{}, err
	}
	return s.workspaces.GetForUser(ctx, id, userID)
}

// DeleteWorkspace removes the workspace; boards, lists, tasks and tags go
// with it through foreign key cascades.
func (s *WorkspaceService) DeleteWorkspace(ctx context.Context, id, userID uint64) error {
	if _, err := s.workspaces.GetForUser(ctx, id, userID); err != nil {
		return err
	}
	return s.workspaces.Delete(ctx, id)
}

var _ ports.WorkspaceService = (*WorkspaceService)(nil)
