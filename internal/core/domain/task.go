package domain

import "time"

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          uint64
	TaskListID  uint64
	Title       string
	Description *string
	Priority    *TaskPriority
	Completed   bool
	Duration    *int
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Tags        []string
	Subtasks    []Subtask
	Attachments []Attachment
}

type Subtask struct {
	ID        uint64
	TaskID    uint64
	Title     string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Attachment struct {
	ID               uint64
	TaskID           uint64
	OriginalFileName string
	FileName         string
	Size             int64
	ContentType      string
	CreatedAt        time.Time
}

type CreateTaskInput struct {
	TaskListID  uint64
	Title       string
	Description *string
	Priority    *TaskPriority
	Duration    *int
}

// UpdateTaskInput is a partial update. The *Set flags distinguish an explicit
// null (clear the column) from an absent field.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Priority       *TaskPriority
	PrioritySet    bool
	Completed      *bool
	Duration       *int
	DurationSet    bool
	Tags           []string
	TagsSet        bool
}

func (in UpdateTaskInput) Empty() bool {
	return in.Title == nil && !in.DescriptionSet && !in.PrioritySet &&
		in.Completed == nil && !in.DurationSet && !in.TagsSet
}

type MoveTaskInput struct {
	SourceTaskListID      uint64
	DestinationTaskListID uint64
	NewPosition           int
}

type CreateSubtaskInput struct {
	TaskID uint64
	Title  string
}

type UpdateSubtaskInput struct {
	Title     *string
	Completed *bool
}

type CreateAttachmentInput struct {
	TaskID           uint64
	OriginalFileName string
	FileName         string
	Size             int64
	ContentType      string
}
