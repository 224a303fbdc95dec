package dto

type BoardSummary struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type BoardItem struct {
	ID          uint64         `json:"id"`
	WorkspaceID uint64         `json:"workspace_id"`
	Title       string         `json:"title"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
	TaskLists   []TaskListItem `json:"task_lists"`
}

type TaskListItem struct {
	ID        uint64     `json:"id"`
	BoardID   uint64     `json:"board_id"`
	Title     string     `json:"title"`
	Position  int        `json:"position"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
	Tasks     []TaskItem `json:"tasks"`
}

type CreateBoardRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	WorkspaceID uint64 `json:"workspace_id" binding:"required,gt=0"`
}

type ReorderTaskListsRequest struct {
	TaskListIDs []uint64 `json:"task_list_ids" binding:"required,dive,gt=0"`
}

type CreateTaskListRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	BoardID uint64 `json:"board_id" binding:"required,gt=0"`
}
