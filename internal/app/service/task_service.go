package service

import (
	"context"
	"strings"

	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
	"nestodo/internal/core/sequencer"
)

type TaskService struct {
	transactor ports.Transactor
	boards     ports.BoardRepository
	taskLists  ports.TaskListRepository
	tasks      ports.TaskRepository
	tags       ports.TagRepository
}

func NewTaskService(
	transactor ports.Transactor,
	boards ports.BoardRepository,
	taskLists ports.TaskListRepository,
	tasks ports.TaskRepository,
	tags ports.TagRepository,
) *TaskService {
	return &TaskService{
		transactor: transactor,
		boards:     boards,
		taskLists:  taskLists,
		tasks:      tasks,
		tags:       tags,
	}
}

// CreateTask appends a task at the end of its task list.
func (s *TaskService) CreateTask(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return domain.Task{}, err
	}
	input.Title = title
	if input.Priority != nil && !input.Priority.Valid() {
		return domain.Task{}, domain.ErrInvalidPriority
	}
	if input.Duration != nil && *input.Duration < 0 {
		return domain.Task{}, domain.ErrNegativeDuration
	}

	var created domain.Task
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.taskLists.GetForUser(ctx, input.TaskListID, userID); err != nil {
			return err
		}
		if err := s.taskLists.Lock(ctx, input.TaskListID); err != nil {
			return err
		}

		current, err := s.tasks.ListPositions(ctx, input.TaskListID)
		if err != nil {
			return err
		}

		created, err = s.tasks.Create(ctx, input, sequencer.Append(current))
		return err
	})
	if err != nil {
		return domain.Task{}, err
	}
	return created, nil
}

func (s *TaskService) GetTask(ctx context.Context, id, userID uint64) (domain.Task, error) {
	return s.tasks.LoadForUser(ctx, id, userID)
}

func (s *TaskService) UpdateTask(ctx context.Context, id, userID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	if input.Title != nil {
		title, err := normalizeTitle(*input.Title)
		if err != nil {
			return domain.Task{}, err
		}
		input.Title = &title
	}
	if input.Priority != nil && !input.Priority.Valid() {
		return domain.Task{}, domain.ErrInvalidPriority
	}
	if input.Duration != nil && *input.Duration < 0 {
		return domain.Task{}, domain.ErrNegativeDuration
	}

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		task, err := s.tasks.GetForUser(ctx, id, userID)
		if err != nil {
			return err
		}
		if err := s.tasks.Update(ctx, id, input); err != nil {
			return err
		}
		if !input.TagsSet {
			return nil
		}
		return s.replaceTags(ctx, task, userID, input.Tags)
	})
	if err != nil {
		return domain.Task{}, err
	}

	return s.tasks.LoadForUser(ctx, id, userID)
}

// replaceTags resolves tag names in the task's workspace, creating the
// missing ones, and makes them the task's complete tag set.
func (s *TaskService) replaceTags(ctx context.Context, task domain.Task, userID uint64, names []string) error {
	taskList, err := s.taskLists.GetForUser(ctx, task.TaskListID, userID)
	if err != nil {
		return err
	}
	board, err := s.boards.GetForUser(ctx, taskList.BoardID, userID)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(names))
	tagIDs := make([]uint64, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		tag, err := s.tags.Upsert(ctx, board.WorkspaceID, name)
		if err != nil {
			return err
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	return s.tasks.SetTags(ctx, task.ID, tagIDs)
}

// MoveTask moves a task inside its list or to another list of the same board.
// The task must currently live in input.SourceTaskListID; a stale source is
// reported as not found. Positions of both lists are recomputed from the
// locked current state, so replaying the same request cannot drift the order.
func (s *TaskService) MoveTask(ctx context.Context, id, userID uint64, input domain.MoveTaskInput) (domain.Task, error) {
	if input.NewPosition < 0 {
		return domain.Task{}, domain.ErrPositionOutOfRange
	}

	source := input.SourceTaskListID
	destination := input.DestinationTaskListID

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.taskLists.Lock(ctx, source, destination); err != nil {
			return err
		}

		if _, err := s.tasks.GetInListForUser(ctx, id, source, userID); err != nil {
			return err
		}
		sourceList, err := s.taskLists.GetForUser(ctx, source, userID)
		if err != nil {
			return err
		}
		destinationList, err := s.taskLists.GetForUser(ctx, destination, userID)
		if err != nil {
			return err
		}
		if sourceList.BoardID != destinationList.BoardID {
			return domain.ErrCrossBoardMove
		}

		if source == destination {
			return s.reorderWithinList(ctx, id, source, input.NewPosition)
		}
		return s.moveAcrossLists(ctx, id, source, destination, input.NewPosition)
	})
	if err != nil {
		return domain.Task{}, err
	}

	return s.tasks.LoadForUser(ctx, id, userID)
}

func (s *TaskService) reorderWithinList(ctx context.Context, id, taskListID uint64, newPosition int) error {
	current, err := s.tasks.ListPositions(ctx, taskListID)
	if err != nil {
		return err
	}
	// The moving task is part of current, so the last valid index is len-1.
	if newPosition > len(current)-1 {
		return domain.ErrPositionOutOfRange
	}

	next := sequencer.ReorderWithinList(sequencer.Order(current), id, newPosition)
	changed := sequencer.Changed(current, next)
	if len(changed) == 0 {
		return nil
	}
	return s.tasks.ApplyPositions(ctx, taskListID, changed)
}

func (s *TaskService) moveAcrossLists(ctx context.Context, id, source, destination uint64, newPosition int) error {
	sourceItems, err := s.tasks.ListPositions(ctx, source)
	if err != nil {
		return err
	}
	destinationItems, err := s.tasks.ListPositions(ctx, destination)
	if err != nil {
		return err
	}
	if newPosition > len(destinationItems) {
		return domain.ErrPositionOutOfRange
	}

	sourceNext, destinationNext := sequencer.MoveAcrossLists(
		sequencer.Order(sourceItems),
		sequencer.Order(destinationItems),
		id,
		newPosition,
	)

	// Destination first: it carries the moved task and re-parents it.
	if changed := sequencer.Changed(destinationItems, destinationNext); len(changed) > 0 {
		if err := s.tasks.ApplyPositions(ctx, destination, changed); err != nil {
			return err
		}
	}
	if changed := sequencer.Changed(sourceItems, sourceNext); len(changed) > 0 {
		if err := s.tasks.ApplyPositions(ctx, source, changed); err != nil {
			return err
		}
	}
	return nil
}

// DeleteTask removes the task and renumbers its former siblings in the same
// transaction.
func (s *TaskService) DeleteTask(ctx context.Context, id, userID uint64) error {
	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		task, err := s.tasks.GetForUser(ctx, id, userID)
		if err != nil {
			return err
		}
		if err := s.taskLists.Lock(ctx, task.TaskListID); err != nil {
			return err
		}
		// A concurrent move may have re-parented the task before the lock.
		if _, err := s.tasks.GetInListForUser(ctx, id, task.TaskListID, userID); err != nil {
			return err
		}
		if err := s.tasks.Delete(ctx, id); err != nil {
			return err
		}

		remaining, err := s.tasks.ListPositions(ctx, task.TaskListID)
		if err != nil {
			return err
		}
		changed := sequencer.Changed(remaining, sequencer.Renumber(remaining))
		if len(changed) == 0 {
			return nil
		}
		return s.tasks.ApplyPositions(ctx, task.TaskListID, changed)
	})
}

var _ ports.TaskService = (*TaskService)(nil)
