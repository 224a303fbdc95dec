package dto

type WorkspaceItem struct {
	ID        uint64         `json:"id"`
	Title     string         `json:"title"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
	Boards    []BoardSummary `json:"boards"`
}

type TitleRequest struct {
	Title string `json:"title" binding:"required,max=255"`
}

type CreateTagRequest struct {
	Tag string `json:"tag" binding:"required,max=100"`
}
