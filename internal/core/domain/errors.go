package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the core wraps exactly one of them so
// adapters can map it without knowing the specific cause.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
	ErrUnauthorized    = errors.New("unauthorized")
)

var (
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrWorkspaceNotFound  = fmt.Errorf("workspace %w", ErrNotFound)
	ErrBoardNotFound      = fmt.Errorf("board %w", ErrNotFound)
	ErrTaskListNotFound   = fmt.Errorf("task list %w", ErrNotFound)
	ErrTaskNotFound       = fmt.Errorf("task %w", ErrNotFound)
	ErrSubtaskNotFound    = fmt.Errorf("subtask %w", ErrNotFound)
	ErrAttachmentNotFound = fmt.Errorf("attachment %w", ErrNotFound)
	ErrTagNotFound        = fmt.Errorf("tag %w", ErrNotFound)
)

var (
	ErrTaskListSetMismatch = fmt.Errorf("%w: task list ids do not match the board", ErrInvalidArgument)
	ErrCrossBoardMove      = fmt.Errorf("%w: cannot move across boards", ErrInvalidArgument)
	ErrPositionOutOfRange  = fmt.Errorf("%w: position out of range", ErrInvalidArgument)
	ErrEmptyTitle          = fmt.Errorf("%w: title is required", ErrInvalidArgument)
	ErrNegativeDuration    = fmt.Errorf("%w: duration must not be negative", ErrInvalidArgument)
	ErrInvalidPriority     = fmt.Errorf("%w: unknown priority", ErrInvalidArgument)
	ErrEmptyFileName       = fmt.Errorf("%w: file name is required", ErrInvalidArgument)
)

var (
	ErrEmailTaken    = fmt.Errorf("%w: email already taken", ErrConflict)
	ErrUsernameTaken = fmt.Errorf("%w: username already taken", ErrConflict)
)

var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("%w: invalid token", ErrUnauthorized)
	ErrTokenRevoked       = fmt.Errorf("%w: refresh token revoked", ErrUnauthorized)
)
