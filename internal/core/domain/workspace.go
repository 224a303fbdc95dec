package domain

import "time"

type Workspace struct {
	ID        uint64
	UserID    uint64
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
	Boards    []Board
}

type WorkspaceTag struct {
	ID          uint64
	WorkspaceID uint64
	Name        string
}
