package ports

import (
	"context"
	"io"

	"nestodo/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, input domain.RegisterInput) (domain.TokenPair, error)
	Login(ctx context.Context, credentials domain.Credentials) (domain.TokenPair, error)
	VerifyAccess(ctx context.Context, token string) (domain.UserPayload, error)
	RefreshTokens(ctx context.Context, refreshToken string) (domain.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type WorkspaceService interface {
	CreateWorkspace(ctx context.Context, userID uint64, title string) (domain.Workspace, error)
	ListWorkspaces(ctx context.Context, userID uint64) ([]domain.Workspace, error)
	GetWorkspace(ctx context.Context, id, userID uint64) (domain.Workspace, error)
	UpdateWorkspace(ctx context.Context, id, userID uint64, title string) (domain.Workspace, error)
	DeleteWorkspace(ctx context.Context, id, userID uint64) error
}

type BoardService interface {
	CreateBoard(ctx context.Context, workspaceID, userID uint64, title string) (domain.Board, error)
	GetBoard(ctx context.Context, id, userID uint64) (domain.Board, error)
	UpdateBoard(ctx context.Context, id, userID uint64, title string) (domain.Board, error)
	DeleteBoard(ctx context.Context, id, userID uint64) error
	ReorderTaskLists(ctx context.Context, id, userID uint64, orderedTaskListIDs []uint64) (domain.Board, error)
}

type TaskListService interface {
	CreateTaskList(ctx context.Context, userID uint64, input domain.CreateTaskListInput) (domain.TaskList, error)
	UpdateTaskList(ctx context.Context, id, userID uint64, title string) (domain.TaskList, error)
	DeleteTaskList(ctx context.Context, id, userID uint64) error
}

type TaskService interface {
	CreateTask(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, id, userID uint64) (domain.Task, error)
	UpdateTask(ctx context.Context, id, userID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	MoveTask(ctx context.Context, id, userID uint64, input domain.MoveTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id, userID uint64) error
}

type SubtaskService interface {
	CreateSubtask(ctx context.Context, userID uint64, input domain.CreateSubtaskInput) (domain.Subtask, error)
	GetSubtask(ctx context.Context, id, userID uint64) (domain.Subtask, error)
	UpdateSubtask(ctx context.Context, id, userID uint64, input domain.UpdateSubtaskInput) (domain.Subtask, error)
	DeleteSubtask(ctx context.Context, id, userID uint64) error
}

type AttachmentUpload struct {
	TaskID      uint64
	FileName    string
	ContentType string
	Body        io.Reader
}

type AttachmentService interface {
	UploadAttachment(ctx context.Context, userID uint64, upload AttachmentUpload) (domain.Attachment, error)
	GetAttachment(ctx context.Context, id, userID uint64) (domain.Attachment, error)
	OpenAttachment(ctx context.Context, id, userID uint64) (domain.Attachment, io.ReadCloser, error)
	DeleteAttachment(ctx context.Context, id, userID uint64) error
}

type TagService interface {
	ListWorkspaceTags(ctx context.Context, workspaceID, userID uint64) ([]string, error)
	CreateWorkspaceTag(ctx context.Context, workspaceID, userID uint64, name string) error
	DeleteWorkspaceTag(ctx context.Context, workspaceID, userID uint64, name string) error
}
