package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"nestodo/internal/core/domain"
)

type fixture struct {
	store       *memStore
	files       *memFiles
	attachRepo  *memAttachments
	workspaces  *WorkspaceService
	boards      *BoardService
	taskLists   *TaskListService
	tasks       *TaskService
	subtasks    *SubtaskService
	attachments *AttachmentService
	tags        *TagService
}

func newFixture() *fixture {
	store := newMemStore()
	files := newMemFiles()
	attachRepo := &memAttachments{memStore: store}

	workspaceRepo := memWorkspaces{store}
	boardRepo := memBoards{store}
	listRepo := memTaskLists{store}
	taskRepo := memTasks{store}
	tagRepo := memTags{store}

	return &fixture{
		store:       store,
		files:       files,
		attachRepo:  attachRepo,
		workspaces:  NewWorkspaceService(workspaceRepo),
		boards:      NewBoardService(store, workspaceRepo, boardRepo, listRepo),
		taskLists:   NewTaskListService(store, boardRepo, listRepo),
		tasks:       NewTaskService(store, boardRepo, listRepo, taskRepo, tagRepo),
		subtasks:    NewSubtaskService(taskRepo, memSubtasks{store}),
		attachments: NewAttachmentService(taskRepo, attachRepo, files),
		tags:        NewTagService(workspaceRepo, tagRepo),
	}
}

func (f *fixture) workspace(t *testing.T, userID uint64) uint64 {
	t.Helper()
	workspace, err := f.workspaces.CreateWorkspace(context.Background(), userID, "Workspace")
	require.NoError(t, err)
	return workspace.ID
}

func (f *fixture) board(t *testing.T, userID, workspaceID uint64) uint64 {
	t.Helper()
	board, err := f.boards.CreateBoard(context.Background(), workspaceID, userID, "Board")
	require.NoError(t, err)
	return board.ID
}

func (f *fixture) list(t *testing.T, userID, boardID uint64, title string) uint64 {
	t.Helper()
	list, err := f.taskLists.CreateTaskList(context.Background(), userID, domain.CreateTaskListInput{BoardID: boardID, Title: title})
	require.NoError(t, err)
	return list.ID
}

func (f *fixture) task(t *testing.T, userID, listID uint64, title string) uint64 {
	t.Helper()
	task, err := f.tasks.CreateTask(context.Background(), userID, domain.CreateTaskInput{TaskListID: listID, Title: title})
	require.NoError(t, err)
	return task.ID
}

// requireContiguous checks that the list positions are exactly 0..n-1.
func (f *fixture) requireContiguous(t *testing.T, listID uint64) {
	t.Helper()
	positions := f.store.listPositions(listID)
	for i, position := range positions {
		require.Equal(t, i, position, "list %d positions %v", listID, positions)
	}
}
