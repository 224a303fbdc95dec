package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"nestodo/internal/adapter/http/dto"
	"nestodo/internal/core/domain"
)

var ErrInvalidPayload = errors.New("invalid payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}

	var priority *domain.TaskPriority
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		priority = &value
	}

	return domain.CreateTaskInput{
		TaskListID:  req.TaskListID,
		Title:       title,
		Description: req.Description,
		Priority:    priority,
		Duration:    req.Duration,
	}, nil
}

// BuildUpdateTaskInput uses the raw body to tell an absent field from an
// explicit null: null clears description, priority and duration while an
// absent field is left untouched.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		title = &value
	}

	if hasJSONField(raw, "completed") && req.Completed == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	var priority *domain.TaskPriority
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		priority = &value
	}

	tagsSet := hasJSONField(raw, "tags")
	tags := req.Tags
	if tagsSet && tags == nil {
		if !isJSONNull(raw["tags"]) {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		tags = []string{}
	}

	return domain.UpdateTaskInput{
		Title:          title,
		Description:    req.Description,
		DescriptionSet: hasJSONField(raw, "description"),
		Priority:       priority,
		PrioritySet:    hasJSONField(raw, "priority"),
		Completed:      req.Completed,
		Duration:       req.Duration,
		DurationSet:    hasJSONField(raw, "duration"),
		Tags:           tags,
		TagsSet:        tagsSet,
	}, nil
}

func BuildMoveTaskInput(req dto.MoveTaskRequest) domain.MoveTaskInput {
	return domain.MoveTaskInput{
		SourceTaskListID:      req.SourceTaskListID,
		DestinationTaskListID: req.DestinationTaskListID,
		NewPosition:           *req.NewPosition,
	}
}

func BuildUpdateSubtaskInput(req dto.UpdateSubtaskRequest, raw map[string]json.RawMessage) (domain.UpdateSubtaskInput, error) {
	if !hasJSONField(raw, "title") && !hasJSONField(raw, "completed") {
		return domain.UpdateSubtaskInput{}, ErrInvalidPayload
	}
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateSubtaskInput{}, ErrInvalidPayload
	}
	if hasJSONField(raw, "completed") && req.Completed == nil {
		return domain.UpdateSubtaskInput{}, ErrInvalidPayload
	}

	var title *string
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateSubtaskInput{}, ErrInvalidPayload
		}
		title = &value
	}

	return domain.UpdateSubtaskInput{Title: title, Completed: req.Completed}, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "completed") ||
		hasJSONField(raw, "duration") ||
		hasJSONField(raw, "tags")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
