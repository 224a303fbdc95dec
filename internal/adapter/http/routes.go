package http

import (
	"nestodo/internal/adapter/http/handlers"
	"nestodo/internal/adapter/http/middleware"
	"nestodo/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Workspace  *handlers.WorkspaceHandler
	Board      *handlers.BoardHandler
	TaskList   *handlers.TaskListHandler
	Task       *handlers.TaskHandler
	Subtask    *handlers.SubtaskHandler
	Attachment *handlers.AttachmentHandler
}

func RegisterRoutes(r *gin.Engine, authService ports.AuthService, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		auth := api.Group("/auth")
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/profile", middleware.RequireAuth(authService), h.Auth.Profile)
	}

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(authService))
	{
		protected.POST("/workspaces", h.Workspace.CreateWorkspace)
		protected.GET("/workspaces", h.Workspace.ListWorkspaces)
		protected.GET("/workspaces/:id", h.Workspace.GetWorkspace)
		protected.PATCH("/workspaces/:id", h.Workspace.UpdateWorkspace)
		protected.DELETE("/workspaces/:id", h.Workspace.DeleteWorkspace)
		protected.GET("/workspaces/:id/tags", h.Workspace.ListTags)
		protected.POST("/workspaces/:id/tags", h.Workspace.CreateTag)
		protected.DELETE("/workspaces/:id/tags/:name", h.Workspace.DeleteTag)

		protected.POST("/boards", h.Board.CreateBoard)
		protected.GET("/boards/:id", h.Board.GetBoard)
		protected.PATCH("/boards/:id", h.Board.UpdateBoard)
		protected.DELETE("/boards/:id", h.Board.DeleteBoard)
		protected.PATCH("/boards/:id/reorder-task-lists", h.Board.ReorderTaskLists)

		protected.POST("/task-lists", h.TaskList.CreateTaskList)
		protected.PATCH("/task-lists/:id", h.TaskList.UpdateTaskList)
		protected.DELETE("/task-lists/:id", h.TaskList.DeleteTaskList)

		protected.POST("/tasks", h.Task.CreateTask)
		protected.GET("/tasks/:id", h.Task.GetTask)
		protected.PATCH("/tasks/:id", h.Task.UpdateTask)
		protected.PATCH("/tasks/:id/move", h.Task.MoveTask)
		protected.DELETE("/tasks/:id", h.Task.DeleteTask)

		protected.POST("/subtasks", h.Subtask.CreateSubtask)
		protected.GET("/subtasks/:id", h.Subtask.GetSubtask)
		protected.PATCH("/subtasks/:id", h.Subtask.UpdateSubtask)
		protected.DELETE("/subtasks/:id", h.Subtask.DeleteSubtask)

		protected.POST("/attachments/upload/:taskId", h.Attachment.UploadAttachment)
		protected.GET("/attachments/:id", h.Attachment.GetAttachment)
		protected.GET("/attachments/download/:id", h.Attachment.DownloadAttachment)
		protected.DELETE("/attachments/:id", h.Attachment.DeleteAttachment)
	}
}
