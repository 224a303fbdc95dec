package domain

import "time"

// Board is also the aggregate root: when loaded through the board aggregate
// repository TaskLists holds the full ordered substructure.
type Board struct {
	ID          uint64
	WorkspaceID uint64
	Title       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	TaskLists   []TaskList
}

type TaskList struct {
	ID        uint64
	BoardID   uint64
	Title     string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
	Tasks     []Task
}

type CreateTaskListInput struct {
	BoardID uint64
	Title   string
}
