package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
	"nestodo/internal/core/sequencer"
)

// memStore is an in-memory rendition of the MySQL adapters. Transactions are
// serialized and roll back to a snapshot when fn fails.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	state  memState
	nextID uint64

	// failTaskApplyOn makes the n-th tasks.ApplyPositions call fail; 0 never.
	failTaskApplyOn int
	taskApplyCalls  int
}

type memState struct {
	users       map[uint64]domain.User
	workspaces  map[uint64]domain.Workspace
	boards      map[uint64]domain.Board
	lists       map[uint64]domain.TaskList
	tasks       map[uint64]domain.Task
	subtasks    map[uint64]domain.Subtask
	attachments map[uint64]domain.Attachment
	tags        map[uint64]domain.WorkspaceTag
	taskTags    map[uint64][]uint64
}

type memTxKey struct{}

func newMemStore() *memStore {
	return &memStore{state: memState{
		users:       map[uint64]domain.User{},
		workspaces:  map[uint64]domain.Workspace{},
		boards:      map[uint64]domain.Board{},
		lists:       map[uint64]domain.TaskList{},
		tasks:       map[uint64]domain.Task{},
		subtasks:    map[uint64]domain.Subtask{},
		attachments: map[uint64]domain.Attachment{},
		tags:        map[uint64]domain.WorkspaceTag{},
		taskTags:    map[uint64][]uint64{},
	}}
}

func (s memState) clone() memState {
	out := memState{
		users:       cloneMap(s.users),
		workspaces:  cloneMap(s.workspaces),
		boards:      cloneMap(s.boards),
		lists:       cloneMap(s.lists),
		tasks:       cloneMap(s.tasks),
		subtasks:    cloneMap(s.subtasks),
		attachments: cloneMap(s.attachments),
		tags:        cloneMap(s.tags),
		taskTags:    make(map[uint64][]uint64, len(s.taskTags)),
	}
	for id, tagIDs := range s.taskTags {
		out.taskTags[id] = append([]uint64(nil), tagIDs...)
	}
	return out
}

func cloneMap[V any](in map[uint64]V) map[uint64]V {
	out := make(map[uint64]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (m *memStore) id() uint64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		return fn(ctx)
	}

	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.mu.Lock()
	snapshot := m.state.clone()
	m.mu.Unlock()

	if err := fn(context.WithValue(ctx, memTxKey{}, true)); err != nil {
		m.mu.Lock()
		m.state = snapshot
		m.mu.Unlock()
		return err
	}
	return nil
}

func requireTx(ctx context.Context) error {
	if ctx.Value(memTxKey{}) == nil {
		return errors.New("lock outside transaction")
	}
	return nil
}

// ownerOfList resolves the chain task list -> board -> workspace -> user.
func (m *memStore) ownerOfList(listID uint64) (uint64, bool) {
	list, ok := m.state.lists[listID]
	if !ok {
		return 0, false
	}
	return m.ownerOfBoard(list.BoardID)
}

func (m *memStore) ownerOfBoard(boardID uint64) (uint64, bool) {
	board, ok := m.state.boards[boardID]
	if !ok {
		return 0, false
	}
	workspace, ok := m.state.workspaces[board.WorkspaceID]
	if !ok {
		return 0, false
	}
	return workspace.UserID, true
}

func (m *memStore) ownerOfTask(taskID uint64) (uint64, bool) {
	task, ok := m.state.tasks[taskID]
	if !ok {
		return 0, false
	}
	return m.ownerOfList(task.TaskListID)
}

func (m *memStore) deleteTask(id uint64) {
	delete(m.state.tasks, id)
	delete(m.state.taskTags, id)
	for sid, subtask := range m.state.subtasks {
		if subtask.TaskID == id {
			delete(m.state.subtasks, sid)
		}
	}
	for aid, attachment := range m.state.attachments {
		if attachment.TaskID == id {
			delete(m.state.attachments, aid)
		}
	}
}

func (m *memStore) deleteList(id uint64) {
	delete(m.state.lists, id)
	for tid, task := range m.state.tasks {
		if task.TaskListID == id {
			m.deleteTask(tid)
		}
	}
}

func (m *memStore) deleteBoard(id uint64) {
	delete(m.state.boards, id)
	for lid, list := range m.state.lists {
		if list.BoardID == id {
			m.deleteList(lid)
		}
	}
}

func (m *memStore) deleteWorkspace(id uint64) {
	delete(m.state.workspaces, id)
	for bid, board := range m.state.boards {
		if board.WorkspaceID == id {
			m.deleteBoard(bid)
		}
	}
	for tid, tag := range m.state.tags {
		if tag.WorkspaceID == id {
			m.removeTag(tid)
		}
	}
}

func (m *memStore) removeTag(id uint64) {
	delete(m.state.tags, id)
	for taskID, tagIDs := range m.state.taskTags {
		kept := tagIDs[:0]
		for _, tagID := range tagIDs {
			if tagID != id {
				kept = append(kept, tagID)
			}
		}
		m.state.taskTags[taskID] = kept
	}
}

func sortedItems(items []sequencer.Item) []sequencer.Item {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Position != items[j].Position {
			return items[i].Position < items[j].Position
		}
		return items[i].ID < items[j].ID
	})
	return items
}

// listOrder returns the task ids of a list in stored order.
func (m *memStore) listOrder(listID uint64) []uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sequencer.Order(m.taskItems(listID))
}

func (m *memStore) listPositions(listID uint64) []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := sortedItems(m.taskItems(listID))
	positions := make([]int, len(items))
	for i, item := range items {
		positions[i] = item.Position
	}
	return positions
}

func (m *memStore) boardOrder(boardID uint64) []uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sequencer.Order(m.listItems(boardID))
}

func (m *memStore) taskItems(listID uint64) []sequencer.Item {
	items := []sequencer.Item{}
	for _, task := range m.state.tasks {
		if task.TaskListID == listID {
			items = append(items, sequencer.Item{ID: task.ID, Position: task.Position})
		}
	}
	return items
}

func (m *memStore) listItems(boardID uint64) []sequencer.Item {
	items := []sequencer.Item{}
	for _, list := range m.state.lists {
		if list.BoardID == boardID {
			items = append(items, sequencer.Item{ID: list.ID, Position: list.Position})
		}
	}
	return items
}

type memUsers struct{ *memStore }

func (r memUsers) Create(_ context.Context, input domain.CreateUserInput) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.state.users {
		if user.Email == input.Email {
			return domain.User{}, domain.ErrEmailTaken
		}
		if user.Username == input.Username {
			return domain.User{}, domain.ErrUsernameTaken
		}
	}
	user := domain.User{
		ID:           r.id(),
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: input.PasswordHash,
	}
	r.state.users[user.ID] = user
	return user, nil
}

func (r memUsers) find(match func(domain.User) bool) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.state.users {
		if match(user) {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (r memUsers) FindByID(_ context.Context, id uint64) (domain.User, error) {
	return r.find(func(u domain.User) bool { return u.ID == id })
}

func (r memUsers) FindByEmail(_ context.Context, email string) (domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Email == email })
}

func (r memUsers) FindByUsername(_ context.Context, username string) (domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Username == username })
}

type memWorkspaces struct{ *memStore }

func (r memWorkspaces) Create(_ context.Context, userID uint64, title string) (domain.Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	workspace := domain.Workspace{ID: r.id(), UserID: userID, Title: title, Boards: []domain.Board{}}
	r.state.workspaces[workspace.ID] = workspace
	return workspace, nil
}

func (r memWorkspaces) withBoards(workspace domain.Workspace) domain.Workspace {
	workspace.Boards = []domain.Board{}
	for _, board := range r.state.boards {
		if board.WorkspaceID == workspace.ID {
			workspace.Boards = append(workspace.Boards, board)
		}
	}
	sort.Slice(workspace.Boards, func(i, j int) bool { return workspace.Boards[i].ID < workspace.Boards[j].ID })
	return workspace
}

func (r memWorkspaces) ListForUser(_ context.Context, userID uint64) ([]domain.Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Workspace{}
	for _, workspace := range r.state.workspaces {
		if workspace.UserID == userID {
			out = append(out, r.withBoards(workspace))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memWorkspaces) GetForUser(_ context.Context, id, userID uint64) (domain.Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	workspace, ok := r.state.workspaces[id]
	if !ok || workspace.UserID != userID {
		return domain.Workspace{}, domain.ErrWorkspaceNotFound
	}
	return r.withBoards(workspace), nil
}

func (r memWorkspaces) UpdateTitle(_ context.Context, id uint64, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	workspace, ok := r.state.workspaces[id]
	if !ok {
		return domain.ErrWorkspaceNotFound
	}
	workspace.Title = title
	r.state.workspaces[id] = workspace
	return nil
}

func (r memWorkspaces) Delete(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.state.workspaces[id]; !ok {
		return domain.ErrWorkspaceNotFound
	}
	r.deleteWorkspace(id)
	return nil
}

type memBoards struct{ *memStore }

func (r memBoards) Create(_ context.Context, workspaceID uint64, title string) (domain.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	board := domain.Board{ID: r.id(), WorkspaceID: workspaceID, Title: title}
	r.state.boards[board.ID] = board
	board.TaskLists = []domain.TaskList{}
	return board, nil
}

func (r memBoards) GetForUser(_ context.Context, id, userID uint64) (domain.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	owner, ok := r.ownerOfBoard(id)
	if !ok || owner != userID {
		return domain.Board{}, domain.ErrBoardNotFound
	}
	return r.state.boards[id], nil
}

func (r memBoards) LoadBoardForUser(_ context.Context, id, userID uint64) (domain.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	owner, ok := r.ownerOfBoard(id)
	if !ok || owner != userID {
		return domain.Board{}, domain.ErrBoardNotFound
	}

	board := r.state.boards[id]
	board.TaskLists = []domain.TaskList{}
	for _, listID := range sequencer.Order(r.listItems(id)) {
		list := r.state.lists[listID]
		list.Tasks = []domain.Task{}
		for _, taskID := range sequencer.Order(r.taskItems(listID)) {
			list.Tasks = append(list.Tasks, r.state.tasks[taskID])
		}
		board.TaskLists = append(board.TaskLists, list)
	}
	return board, nil
}

func (r memBoards) LoadTaskListsForBoard(_ context.Context, boardID uint64) ([]sequencer.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sortedItems(r.listItems(boardID)), nil
}

func (r memBoards) Lock(ctx context.Context, _ uint64) error {
	return requireTx(ctx)
}

func (r memBoards) UpdateTitle(_ context.Context, id uint64, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	board, ok := r.state.boards[id]
	if !ok {
		return domain.ErrBoardNotFound
	}
	board.Title = title
	r.state.boards[id] = board
	return nil
}

func (r memBoards) Delete(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.state.boards[id]; !ok {
		return domain.ErrBoardNotFound
	}
	r.deleteBoard(id)
	return nil
}

type memTaskLists struct{ *memStore }

func (r memTaskLists) Create(_ context.Context, input domain.CreateTaskListInput, position int) (domain.TaskList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := domain.TaskList{ID: r.id(), BoardID: input.BoardID, Title: input.Title, Position: position}
	r.state.lists[list.ID] = list
	return list, nil
}

func (r memTaskLists) GetForUser(_ context.Context, id, userID uint64) (domain.TaskList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	owner, ok := r.ownerOfList(id)
	if !ok || owner != userID {
		return domain.TaskList{}, domain.ErrTaskListNotFound
	}
	return r.state.lists[id], nil
}

func (r memTaskLists) Lock(ctx context.Context, _ ...uint64) error {
	return requireTx(ctx)
}

func (r memTaskLists) UpdateTitle(_ context.Context, id uint64, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, ok := r.state.lists[id]
	if !ok {
		return domain.ErrTaskListNotFound
	}
	list.Title = title
	r.state.lists[id] = list
	return nil
}

func (r memTaskLists) Delete(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.state.lists[id]; !ok {
		return domain.ErrTaskListNotFound
	}
	r.deleteList(id)
	return nil
}

func (r memTaskLists) ApplyPositions(_ context.Context, assignments []sequencer.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, assignment := range assignments {
		list, ok := r.state.lists[assignment.ID]
		if !ok {
			return domain.ErrTaskListNotFound
		}
		list.Position = assignment.Position
		r.state.lists[assignment.ID] = list
	}
	return nil
}

type memTasks struct{ *memStore }

func (r memTasks) Create(_ context.Context, input domain.CreateTaskInput, position int) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task := domain.Task{
		ID:          r.id(),
		TaskListID:  input.TaskListID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Duration:    input.Duration,
		Position:    position,
	}
	r.state.tasks[task.ID] = task
	return task, nil
}

func (r memTasks) get(id, userID uint64) (domain.Task, error) {
	owner, ok := r.ownerOfTask(id)
	if !ok || owner != userID {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return r.state.tasks[id], nil
}

func (r memTasks) GetForUser(_ context.Context, id, userID uint64) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(id, userID)
}

func (r memTasks) GetInListForUser(_ context.Context, id, taskListID, userID uint64) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, err := r.get(id, userID)
	if err != nil {
		return domain.Task{}, err
	}
	if task.TaskListID != taskListID {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

func (r memTasks) LoadForUser(_ context.Context, id, userID uint64) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, err := r.get(id, userID)
	if err != nil {
		return domain.Task{}, err
	}

	task.Tags = []string{}
	for _, tagID := range r.state.taskTags[id] {
		task.Tags = append(task.Tags, r.state.tags[tagID].Name)
	}
	sort.Strings(task.Tags)

	task.Subtasks = []domain.Subtask{}
	for _, subtask := range r.state.subtasks {
		if subtask.TaskID == id {
			task.Subtasks = append(task.Subtasks, subtask)
		}
	}
	sort.Slice(task.Subtasks, func(i, j int) bool { return task.Subtasks[i].ID < task.Subtasks[j].ID })

	task.Attachments = []domain.Attachment{}
	for _, attachment := range r.state.attachments {
		if attachment.TaskID == id {
			task.Attachments = append(task.Attachments, attachment)
		}
	}
	sort.Slice(task.Attachments, func(i, j int) bool { return task.Attachments[i].ID < task.Attachments[j].ID })
	return task, nil
}

func (r memTasks) ListPositions(_ context.Context, taskListID uint64) ([]sequencer.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sortedItems(r.taskItems(taskListID)), nil
}

func (r memTasks) Update(_ context.Context, id uint64, input domain.UpdateTaskInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.state.tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.DescriptionSet {
		task.Description = input.Description
	}
	if input.PrioritySet {
		task.Priority = input.Priority
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	if input.DurationSet {
		task.Duration = input.Duration
	}
	r.state.tasks[id] = task
	return nil
}

func (r memTasks) SetTags(_ context.Context, id uint64, tagIDs []uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.taskTags[id] = append([]uint64(nil), tagIDs...)
	return nil
}

func (r memTasks) Delete(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.state.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	r.deleteTask(id)
	return nil
}

func (r memTasks) ApplyPositions(_ context.Context, taskListID uint64, assignments []sequencer.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.taskApplyCalls++
	if r.taskApplyCalls == r.failTaskApplyOn {
		return errors.New("write failed")
	}
	for _, assignment := range assignments {
		task, ok := r.state.tasks[assignment.ID]
		if !ok {
			return domain.ErrTaskNotFound
		}
		task.Position = assignment.Position
		task.TaskListID = taskListID
		r.state.tasks[assignment.ID] = task
	}
	return nil
}

type memSubtasks struct{ *memStore }

func (r memSubtasks) Create(_ context.Context, input domain.CreateSubtaskInput) (domain.Subtask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subtask := domain.Subtask{ID: r.id(), TaskID: input.TaskID, Title: input.Title}
	r.state.subtasks[subtask.ID] = subtask
	return subtask, nil
}

func (r memSubtasks) GetForUser(_ context.Context, id, userID uint64) (domain.Subtask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subtask, ok := r.state.subtasks[id]
	if !ok {
		return domain.Subtask{}, domain.ErrSubtaskNotFound
	}
	if owner, ok := r.ownerOfTask(subtask.TaskID); !ok || owner != userID {
		return domain.Subtask{}, domain.ErrSubtaskNotFound
	}
	return subtask, nil
}

func (r memSubtasks) Update(_ context.Context, id uint64, input domain.UpdateSubtaskInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	subtask, ok := r.state.subtasks[id]
	if !ok {
		return domain.ErrSubtaskNotFound
	}
	if input.Title != nil {
		subtask.Title = *input.Title
	}
	if input.Completed != nil {
		subtask.Completed = *input.Completed
	}
	r.state.subtasks[id] = subtask
	return nil
}

func (r memSubtasks) Delete(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.state.subtasks[id]; !ok {
		return domain.ErrSubtaskNotFound
	}
	delete(r.state.subtasks, id)
	return nil
}

type memAttachments struct {
	*memStore
	createErr error
}

func (r memAttachments) Create(_ context.Context, input domain.CreateAttachmentInput) (domain.Attachment, error) {
	if r.createErr != nil {
		return domain.Attachment{}, r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	attachment := domain.Attachment{
		ID:               r.id(),
		TaskID:           input.TaskID,
		OriginalFileName: input.OriginalFileName,
		FileName:         input.FileName,
		Size:             input.Size,
		ContentType:      input.ContentType,
	}
	r.state.attachments[attachment.ID] = attachment
	return attachment, nil
}

func (r memAttachments) GetForUser(_ context.Context, id, userID uint64) (domain.Attachment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	attachment, ok := r.state.attachments[id]
	if !ok {
		return domain.Attachment{}, domain.ErrAttachmentNotFound
	}
	if owner, ok := r.ownerOfTask(attachment.TaskID); !ok || owner != userID {
		return domain.Attachment{}, domain.ErrAttachmentNotFound
	}
	return attachment, nil
}

func (r memAttachments) Delete(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.state.attachments[id]; !ok {
		return domain.ErrAttachmentNotFound
	}
	delete(r.state.attachments, id)
	return nil
}

type memTags struct{ *memStore }

func (r memTags) ListNames(_ context.Context, workspaceID uint64) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := []string{}
	for _, tag := range r.state.tags {
		if tag.WorkspaceID == workspaceID {
			names = append(names, tag.Name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (r memTags) Upsert(_ context.Context, workspaceID uint64, name string) (domain.WorkspaceTag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tag := range r.state.tags {
		if tag.WorkspaceID == workspaceID && tag.Name == name {
			return tag, nil
		}
	}
	tag := domain.WorkspaceTag{ID: r.id(), WorkspaceID: workspaceID, Name: name}
	r.state.tags[tag.ID] = tag
	return tag, nil
}

func (r memTags) Delete(_ context.Context, workspaceID uint64, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, tag := range r.state.tags {
		if tag.WorkspaceID == workspaceID && tag.Name == name {
			r.removeTag(id)
			return nil
		}
	}
	return domain.ErrTagNotFound
}

// memFiles is a FileStorage keeping bodies in memory.
type memFiles struct {
	mu      sync.Mutex
	files   map[string][]byte
	saveErr error
}

func newMemFiles() *memFiles {
	return &memFiles{files: map[string][]byte{}}
}

func (f *memFiles) Save(_ context.Context, name string, body io.Reader) (int64, error) {
	if f.saveErr != nil {
		return 0, f.saveErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[name] = data
	return int64(len(data)), nil
}

func (f *memFiles) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.files[name]
	if !ok {
		return nil, domain.ErrAttachmentNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *memFiles) Remove(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.files, name)
	return nil
}

func (f *memFiles) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.files)
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Verify(hash, password string) bool { return hash == "hashed:"+password }

// memTokens issues opaque tokens and remembers their claims.
type memTokens struct {
	mu      sync.Mutex
	n       int
	ttl     time.Duration
	now     func() time.Time
	access  map[string]domain.UserPayload
	refresh map[string]domain.RefreshClaims
}

func newMemTokens(now func() time.Time) *memTokens {
	return &memTokens{
		ttl:     7 * 24 * time.Hour,
		now:     now,
		access:  map[string]domain.UserPayload{},
		refresh: map[string]domain.RefreshClaims{},
	}
}

func (t *memTokens) Issue(payload domain.UserPayload) (domain.TokenPair, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.n++
	pair := domain.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", t.n),
		RefreshToken: fmt.Sprintf("refresh-%d", t.n),
	}
	t.access[pair.AccessToken] = payload
	t.refresh[pair.RefreshToken] = domain.RefreshClaims{
		UserPayload: payload,
		JTI:         fmt.Sprintf("jti-%d", t.n),
		ExpiresAt:   t.now().Add(t.ttl),
	}
	return pair, nil
}

func (t *memTokens) ParseAccess(token string) (domain.UserPayload, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	payload, ok := t.access[token]
	if !ok {
		return domain.UserPayload{}, domain.ErrInvalidToken
	}
	return payload, nil
}

func (t *memTokens) ParseRefresh(token string) (domain.RefreshClaims, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	claims, ok := t.refresh[token]
	if !ok || !strings.HasPrefix(token, "refresh-") {
		return domain.RefreshClaims{}, domain.ErrInvalidToken
	}
	if !t.now().Before(claims.ExpiresAt) {
		return domain.RefreshClaims{}, fmt.Errorf("token expired: %w", domain.ErrInvalidToken)
	}
	return claims, nil
}

type memRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
	err     error
}

func newMemRevocations() *memRevocations {
	return &memRevocations{revoked: map[string]time.Duration{}}
}

func (r *memRevocations) Revoke(_ context.Context, jti string, ttl time.Duration) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.revoked[jti]; ok {
		return false, nil
	}
	r.revoked[jti] = ttl
	return true, nil
}

func (r *memRevocations) IsRevoked(_ context.Context, jti string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.revoked[jti]
	return ok, nil
}

var (
	_ ports.Transactor           = (*memStore)(nil)
	_ ports.UserRepository       = memUsers{}
	_ ports.WorkspaceRepository  = memWorkspaces{}
	_ ports.BoardRepository      = memBoards{}
	_ ports.TaskListRepository   = memTaskLists{}
	_ ports.TaskRepository       = memTasks{}
	_ ports.SubtaskRepository    = memSubtasks{}
	_ ports.AttachmentRepository = memAttachments{}
	_ ports.TagRepository        = memTags{}
	_ ports.FileStorage          = (*memFiles)(nil)
	_ ports.PasswordHasher       = plainHasher{}
	_ ports.TokenIssuer          = (*memTokens)(nil)
	_ ports.RevocationStore      = (*memRevocations)(nil)
)
