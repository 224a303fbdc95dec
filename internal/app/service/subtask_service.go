package service

import (
	"context"

	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
)

type SubtaskService struct {
	tasks    ports.TaskRepository
	subtasks ports.SubtaskRepository
}

func NewSubtaskService(tasks ports.TaskRepository, subtasks ports.SubtaskRepository) *SubtaskService {
	return &SubtaskService{tasks: tasks, subtasks: subtasks}
}

func (s *SubtaskService) CreateSubtask(ctx context.Context, userID uint64, input domain.CreateSubtaskInput) (domain.Subtask, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return domain.Subtask{}, err
	}
	input.Title = title

	if _, err := s.tasks.GetForUser(ctx, input.TaskID, userID); err != nil {
		return domain.Subtask{}, err
	}
	return s.subtasks.Create(ctx, input)
}

func (s *SubtaskService) GetSubtask(ctx context.Context, id, userID uint64) (domain.Subtask, error) {
	return s.subtasks.GetForUser(ctx, id, userID)
}

func (s *SubtaskService) UpdateSubtask(ctx context.Context, id, userID uint64, input domain.UpdateSubtaskInput) (domain.Subtask, error) {
	if input.Title != nil {
		title, err := normalizeTitle(*input.Title)
		if err != nil {
			return domain.Subtask{}, err
		}
		input.Title = &title
	}
	if _, err := s.subtasks.GetForUser(ctx, id, userID); err != nil {
		return domain.Subtask{}, err
	}
	if input.Title != nil || input.Completed != nil {
		if err := s.subtasks.Update(ctx, id, input); err != nil {
			return domain.Subtask{}, err
		}
	}
	return s.subtasks.GetForUser(ctx, id, userID)
}

func (s *SubtaskService) DeleteSubtask(ctx context.Context, id, userID uint64) error {
	if _, err := s.subtasks.GetForUser(ctx, id, userID); err != nil {
		return err
	}
	return s.subtasks.Delete(ctx, id)
}

var _ ports.SubtaskService = (*SubtaskService)(nil)
