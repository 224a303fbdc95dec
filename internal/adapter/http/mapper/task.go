package mapper

import (
	"time"

	"nestodo/internal/adapter/http/dto"
	"nestodo/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		TaskListID:  task.TaskListID,
		Title:       task.Title,
		Completed:   task.Completed,
		Position:    task.Position,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
		Tags:        task.Tags,
		Subtasks:    ToSubtaskItems(task.Subtasks),
		Attachments: ToAttachmentItems(task.Attachments),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.Priority != nil {
		value := string(*task.Priority)
		item.Priority = &value
	}

	if task.Duration != nil {
		value := *task.Duration
		item.Duration = &value
	}

	if item.Tags == nil {
		item.Tags = []string{}
	}

	return item
}

func ToSubtaskItems(subtasks []domain.Subtask) []dto.SubtaskItem {
	items := make([]dto.SubtaskItem, 0, len(subtasks))
	for _, subtask := range subtasks {
		items = append(items, ToSubtaskItem(subtask))
	}
	return items
}

func ToSubtaskItem(subtask domain.Subtask) dto.SubtaskItem {
	return dto.SubtaskItem{
		ID:        subtask.ID,
		TaskID:    subtask.TaskID,
		Title:     subtask.Title,
		Completed: subtask.Completed,
		CreatedAt: subtask.CreatedAt.Format(time.RFC3339),
		UpdatedAt: subtask.UpdatedAt.Format(time.RFC3339),
	}
}

func ToAttachmentItems(attachments []domain.Attachment) []dto.AttachmentItem {
	items := make([]dto.AttachmentItem, 0, len(attachments))
	for _, attachment := range attachments {
		items = append(items, ToAttachmentItem(attachment))
	}
	return items
}

func ToAttachmentItem(attachment domain.Attachment) dto.AttachmentItem {
	return dto.AttachmentItem{
		ID:               attachment.ID,
		TaskID:           attachment.TaskID,
		OriginalFileName: attachment.OriginalFileName,
		FileName:         attachment.FileName,
		Size:             attachment.Size,
		ContentType:      attachment.ContentType,
		CreatedAt:        attachment.CreatedAt.Format(time.RFC3339),
	}
}
