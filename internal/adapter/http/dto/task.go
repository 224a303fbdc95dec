package dto

type TaskItem struct {
	ID          uint64           `json:"id"`
	TaskListID  uint64           `json:"task_list_id"`
	Title       string           `json:"title"`
	Description *string          `json:"description"`
	Priority    *string          `json:"priority"`
	Completed   bool             `json:"completed"`
	Duration    *int             `json:"duration"`
	Position    int              `json:"position"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
	Tags        []string         `json:"tags"`
	Subtasks    []SubtaskItem    `json:"subtasks"`
	Attachments []AttachmentItem `json:"attachments"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	TaskListID  uint64  `json:"task_list_id" binding:"required,gt=0"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	Duration    *int    `json:"duration" binding:"omitempty,gte=0"`
}

// UpdateTaskRequest fields are all optional. description, priority and
// duration may be sent as null to clear them.
type UpdateTaskRequest struct {
	Title       *string  `json:"title" binding:"omitempty,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=65535"`
	Priority    *string  `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	Completed   *bool    `json:"completed"`
	Duration    *int     `json:"duration" binding:"omitempty,gte=0"`
	Tags        []string `json:"tags" binding:"omitempty,dive,max=100"`
}

type MoveTaskRequest struct {
	SourceTaskListID      uint64 `json:"source_task_list_id" binding:"required,gt=0"`
	DestinationTaskListID uint64 `json:"destination_task_list_id" binding:"required,gt=0"`
	NewPosition           *int   `json:"new_position" binding:"required"`
}

type SubtaskItem struct {
	ID        uint64 `json:"id"`
	TaskID    uint64 `json:"task_id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CreateSubtaskRequest struct {
	Title  string `json:"title" binding:"required,max=255"`
	TaskID uint64 `json:"task_id" binding:"required,gt=0"`
}

type UpdateSubtaskRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=255"`
	Completed *bool   `json:"completed"`
}

type AttachmentItem struct {
	ID               uint64 `json:"id"`
	TaskID           uint64 `json:"task_id"`
	OriginalFileName string `json:"original_file_name"`
	FileName         string `json:"file_name"`
	Size             int64  `json:"size"`
	ContentType      string `json:"content_type"`
	CreatedAt        string `json:"created_at"`
}
