package service

import (
	"context"

	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
	"nestodo/internal/core/sequencer"
)

type TaskListService struct {
	transactor ports.Transactor
	boards     ports.BoardRepository
	taskLists  ports.TaskListRepository
}

func NewTaskListService(transactor ports.Transactor, boards ports.BoardRepository, taskLists ports.TaskListRepository) *TaskListService {
	return &TaskListService{transactor: transactor, boards: boards, taskLists: taskLists}
}

// CreateTaskList appends a task list at the end of the board.
func (s *TaskListService) CreateTaskList(ctx context.Context, userID uint64, input domain.CreateTaskListInput) (domain.TaskList, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return domain.TaskList{}, err
	}
	input.Title = title

	var created domain.TaskList
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.boards.GetForUser(ctx, input.BoardID, userID); err != nil {
			return err
		}
		if err := s.boards.Lock(ctx, input.BoardID); err != nil {
			return err
		}

		current, err := s.boards.LoadTaskListsForBoard(ctx, input.BoardID)
		if err != nil {
			return err
		}

		created, err = s.taskLists.Create(ctx, input, sequencer.Append(current))
		return err
	})
	if err != nil {
		return domain.TaskList{}, err
	}
	return created, nil
}

func (s *TaskListService) UpdateTaskList(ctx context.Context, id, userID uint64, title string) (domain.TaskList, error) {
	title, err := normalizeTitle(title)
	if err != nil {
		return domain.TaskList{}, err
	}
	if _, err := s.taskLists.GetForUser(ctx, id, userID); err != nil {
		return domain.TaskList{}, err
	}
	if err := s.taskLists.UpdateTitle(ctx, id, title); err != nil {
		return domain.TaskList{}, err
	}
	return s.taskLists.GetForUser(ctx, id, userID)
}

// DeleteTaskList removes the list (and its tasks) and renumbers the remaining
// lists of the board in the same transaction.
func (s *TaskListService) DeleteTaskList(ctx context.Context, id, userID uint64) error {
	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		taskList, err := s.taskLists.GetForUser(ctx, id, userID)
		if err != nil {
			return err
		}
		if err := s.boards.Lock(ctx, taskList.BoardID); err != nil {
			return err
		}
		if err := s.taskLists.Delete(ctx, id); err != nil {
			return err
		}

		remaining, err := s.boards.LoadTaskListsForBoard(ctx, taskList.BoardID)
		if err != nil {
			return err
		}
		changed := sequencer.Changed(remaining, sequencer.Renumber(remaining))
		if len(changed) == 0 {
			return nil
		}
		return s.taskLists.ApplyPositions(ctx, changed)
	})
}

var _ ports.TaskListService = (*TaskListService)(nil)
