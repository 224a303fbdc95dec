package apierrors

const (
	MsgInvalidID      = "invalidID"
	MsgInvalidPayload = "invalidPayload"
	MsgFileTooLarge   = "fileTooLarge"
	MsgMissingFile    = "missingFile"
	MsgMissingToken   = "missingToken"

	MsgNotFound           = "notFound"
	MsgWorkspaceNotFound  = "workspaceNotFound"
	MsgBoardNotFound      = "boardNotFound"
	MsgTaskListNotFound   = "taskListNotFound"
	MsgTaskNotFound       = "taskNotFound"
	MsgSubtaskNotFound    = "subtaskNotFound"
	MsgAttachmentNotFound = "attachmentNotFound"
	MsgTagNotFound        = "tagNotFound"

	MsgInvalidArgument     = "invalidArgument"
	MsgTaskListSetMismatch = "taskListSetMismatch"
	MsgCrossBoardMove      = "crossBoardMove"
	MsgPositionOutOfRange  = "positionOutOfRange"
	MsgEmptyTitle          = "emptyTitle"
	MsgNegativeDuration    = "negativeDuration"
	MsgInvalidPriority     = "invalidPriority"
	MsgEmptyFileName       = "emptyFileName"

	MsgConflict      = "conflict"
	MsgEmailTaken    = "emailTaken"
	MsgUsernameTaken = "usernameTaken"

	MsgUnauthorized       = "unauthorized"
	MsgInvalidCredentials = "invalidCredentials"
	MsgInvalidToken       = "invalidToken"
	MsgTokenRevoked       = "tokenRevoked"

	MsgFailAuth       = "failAuth"
	MsgFailWorkspace  = "failWorkspace"
	MsgFailBoard      = "failBoard"
	MsgFailTaskList   = "failTaskList"
	MsgFailTask       = "failTask"
	MsgFailSubtask    = "failSubtask"
	MsgFailAttachment = "failAttachment"
	MsgFailTag        = "failTag"

	MsgLoggedOut = "loggedOut"
)
