package mapper

import (
	"time"

	"nestodo/internal/adapter/http/dto"
	"nestodo/internal/core/domain"
)

func ToBoardItem(board domain.Board) dto.BoardItem {
	item := dto.BoardItem{
		ID:          board.ID,
		WorkspaceID: board.WorkspaceID,
		Title:       board.Title,
		CreatedAt:   board.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   board.UpdatedAt.Format(time.RFC3339),
		TaskLists:   make([]dto.TaskListItem, 0, len(board.TaskLists)),
	}
	for _, list := range board.TaskLists {
		item.TaskLists = append(item.TaskLists, ToTaskListItem(list))
	}
	return item
}

func ToTaskListItem(list domain.TaskList) dto.TaskListItem {
	return dto.TaskListItem{
		ID:        list.ID,
		BoardID:   list.BoardID,
		Title:     list.Title,
		Position:  list.Position,
		CreatedAt: list.CreatedAt.Format(time.RFC3339),
		UpdatedAt: list.UpdatedAt.Format(time.RFC3339),
		Tasks:     ToTaskItems(list.Tasks),
	}
}

func ToBoardSummary(board domain.Board) dto.BoardSummary {
	return dto.BoardSummary{
		ID:        board.ID,
		Title:     board.Title,
		CreatedAt: board.CreatedAt.Format(time.RFC3339),
		UpdatedAt: board.UpdatedAt.Format(time.RFC3339),
	}
}

func ToWorkspaceItems(workspaces []domain.Workspace) []dto.WorkspaceItem {
	items := make([]dto.WorkspaceItem, 0, len(workspaces))
	for _, workspace := range workspaces {
		items = append(items, ToWorkspaceItem(workspace))
	}
	return items
}

func ToWorkspaceItem(workspace domain.Workspace) dto.WorkspaceItem {
	item := dto.WorkspaceItem{
		ID:        workspace.ID,
		Title:     workspace.Title,
		CreatedAt: workspace.CreatedAt.Format(time.RFC3339),
		UpdatedAt: workspace.UpdatedAt.Format(time.RFC3339),
		Boards:    make([]dto.BoardSummary, 0, len(workspace.Boards)),
	}
	for _, board := range workspace.Boards {
		item.Boards = append(item.Boards, ToBoardSummary(board))
	}
	return item
}
