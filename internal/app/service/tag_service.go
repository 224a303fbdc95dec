package service

import (
	"context"
	"strings"

	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
)

type TagService struct {
	workspaces ports.WorkspaceRepository
	tags       ports.TagRepository
}

func NewTagService(workspaces ports.WorkspaceRepository, tags ports.TagRepository) *TagService {
	return &TagService{workspaces: workspaces, tags: tags}
}

func (s *TagService) ListWorkspaceTags(ctx context.Context, workspaceID, userID uint64) ([]string, error) {
	if _, err := s.workspaces.GetForUser(ctx, workspaceID, userID); err != nil {
		return nil, err
	}
	return s.tags.ListNames(ctx, workspaceID)
}

// CreateWorkspaceTag is idempotent: an existing tag with the same name is kept.
func (s *TagService) CreateWorkspaceTag(ctx context.Context, workspaceID, userID uint64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrEmptyTitle
	}
	if _, err := s.workspaces.GetForUser(ctx, workspaceID, userID); err != nil {
		return err
	}
	_, err := s.tags.Upsert(ctx, workspaceID, name)
	return err
}

func (s *TagService) DeleteWorkspaceTag(ctx context.Context, workspaceID, userID uint64, name string) error {
	if _, err := s.workspaces.GetForUser(ctx, workspaceID, userID); err != nil {
		return err
	}
	return s.tags.Delete(ctx, workspaceID, name)
}

var _ ports.TagService = (*TagService)(nil)
