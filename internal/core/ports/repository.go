package ports

import (
	"context"

	"nestodo/internal/core/domain"
	"nestodo/internal/core/sequencer"
)

// Transactor runs fn in a single atomic unit of work. Repositories called
// with the ctx passed to fn take part in the same transaction; nested calls
// join the outer transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserRepository interface {
	Create(ctx context.Context, input domain.CreateUserInput) (domain.User, error)
	FindByID(ctx context.Context, id uint64) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
}

type WorkspaceRepository interface {
	Create(ctx context.Context, userID uint64, title string) (domain.Workspace, error)
	ListForUser(ctx context.Context, userID uint64) ([]domain.Workspace, error)
	GetForUser(ctx context.Context, id, userID uint64) (domain.Workspace, error)
	UpdateTitle(ctx context.Context, id uint64, title string) error
	Delete(ctx context.Context, id uint64) error
}

// BoardRepository is the board aggregate repository. Every *ForUser method
// resolves the ownership chain up to the workspace owner and reports a board
// that exists but belongs to someone else as domain.ErrBoardNotFound.
type BoardRepository interface {
	Create(ctx context.Context, workspaceID uint64, title string) (domain.Board, error)
	GetForUser(ctx context.Context, id, userID uint64) (domain.Board, error)
	LoadBoardForUser(ctx context.Context, id, userID uint64) (domain.Board, error)
	LoadTaskListsForBoard(ctx context.Context, boardID uint64) ([]sequencer.Item, error)
	Lock(ctx context.Context, id uint64) error
	UpdateTitle(ctx context.Context, id uint64, title string) error
	Delete(ctx context.Context, id uint64) error
}

type TaskListRepository interface {
	Create(ctx context.Context, input domain.CreateTaskListInput, position int) (domain.TaskList, error)
	GetForUser(ctx context.Context, id, userID uint64) (domain.TaskList, error)
	// Lock takes row locks on the given task lists in ascending id order.
	Lock(ctx context.Context, ids ...uint64) error
	UpdateTitle(ctx context.Context, id uint64, title string) error
	Delete(ctx context.Context, id uint64) error
	ApplyPositions(ctx context.Context, assignments []sequencer.Assignment) error
}

type TaskRepository interface {
	Create(ctx context.Context, input domain.CreateTaskInput, position int) (domain.Task, error)
	GetForUser(ctx context.Context, id, userID uint64) (domain.Task, error)
	GetInListForUser(ctx context.Context, id, taskListID, userID uint64) (domain.Task, error)
	// LoadForUser returns the task with its tags, subtasks and attachments.
	LoadForUser(ctx context.Context, id, userID uint64) (domain.Task, error)
	ListPositions(ctx context.Context, taskListID uint64) ([]sequencer.Item, error)
	Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) error
	SetTags(ctx context.Context, id uint64, tagIDs []uint64) error
	Delete(ctx context.Context, id uint64) error
	// ApplyPositions writes every assignment and sets the parent list to
	// taskListID, which is how a moved task changes lists.
	ApplyPositions(ctx context.Context, taskListID uint64, assignments []sequencer.Assignment) error
}

type SubtaskRepository interface {
	Create(ctx context.Context, input domain.CreateSubtaskInput) (domain.Subtask, error)
	GetForUser(ctx context.Context, id, userID uint64) (domain.Subtask, error)
	Update(ctx context.Context, id uint64, input domain.UpdateSubtaskInput) error
	Delete(ctx context.Context, id uint64) error
}

type AttachmentRepository interface {
	Create(ctx context.Context, input domain.CreateAttachmentInput) (domain.Attachment, error)
	GetForUser(ctx context.Context, id, userID uint64) (domain.Attachment, error)
	Delete(ctx context.Context, id uint64) error
}

type TagRepository interface {
	ListNames(ctx context.Context, workspaceID uint64) ([]string, error)
	Upsert(ctx context.Context, workspaceID uint64, name string) (domain.WorkspaceTag, error)
	Delete(ctx context.Context, workspaceID uint64, name string) error
}
