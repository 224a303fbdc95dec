package service

import (
	"context"

	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
	"nestodo/internal/core/sequencer"
)

type BoardService struct {
	transactor ports.Transactor
	workspaces ports.WorkspaceRepository
	boards     ports.BoardRepository
	taskLists  ports.TaskListRepository
}

func NewBoardService(
	transactor ports.Transactor,
	workspaces ports.WorkspaceRepository,
	boards ports.BoardRepository,
	taskLists ports.TaskListRepository,
) *BoardService {
	return &BoardService{
		transactor: transactor,
		workspaces: workspaces,
		boards:     boards,
		taskLists:  taskLists,
	}
}

func (s *BoardService) CreateBoard(ctx context.Context, workspaceID, userID uint64, title string) (domain.Board, error) {
	title, err := normalizeTitle(title)
	if err != nil {
		return domain.Board{}, err
	}
	if _, err := s.workspaces.GetForUser(ctx, workspaceID, userID); err != nil {
		return domain.Board{}, err
	}
	return s.boards.Create(ctx, workspaceID, title)
}

func (s *BoardService) GetBoard(ctx context.Context, id, userID uint64) (domain.Board, error) {
	return s.boards.LoadBoardForUser(ctx, id, userID)
}

func (s *BoardService) UpdateBoard(ctx context.Context, id, userID uint64, title string) (domain.Board, error) {
	title, err := normalizeTitle(title)
	if err != nil {
		return domain.Board{}, err
	}
	if _, err := s.boards.GetForUser(ctx, id, userID); err != nil {
		return domain.Board{}, err
	}
	if err := s.boards.UpdateTitle(ctx, id, title); err != nil {
		return domain.Board{}, err
	}
	return s.boards.LoadBoardForUser(ctx, id, userID)
}

func (s *BoardService) DeleteBoard(ctx context.Context, id, userID uint64) error {
	if _, err := s.boards.GetForUser(ctx, id, userID); err != nil {
		return err
	}
	return s.boards.Delete(ctx, id)
}

// ReorderTaskLists assigns position = index to every task list of the board.
// The submission must name exactly the board's current task lists.
func (s *BoardService) ReorderTaskLists(ctx context.Context, id, userID uint64, orderedTaskListIDs []uint64) (domain.Board, error) {
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.boards.GetForUser(ctx, id, userID); err != nil {
			return err
		}
		if err := s.boards.Lock(ctx, id); err != nil {
			return err
		}

		current, err := s.boards.LoadTaskListsForBoard(ctx, id)
		if err != nil {
			return err
		}
		if !sequencer.SameMembers(current, orderedTaskListIDs) {
			return domain.ErrTaskListSetMismatch
		}

		changed := sequencer.Changed(current, sequencer.FromOrder(orderedTaskListIDs))
		if len(changed) == 0 {
			return nil
		}
		return s.taskLists.ApplyPositions(ctx, changed)
	})
	if err != nil {
		return domain.Board{}, err
	}

	return s.boards.LoadBoardForUser(ctx, id, userID)
}

var _ ports.BoardService = (*BoardService)(nil)
