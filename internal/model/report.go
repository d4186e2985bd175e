package model

type Report struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CodeName    string `json:"code_name"`
	FileName    string `json:"file_name"`
}

type ReportCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	CodeName    string `json:"code_name" binding:"required"`
	FileName    string `json:"file_name" binding:"required"`
}

type ReportUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CodeName    *string `json:"code_name"`
	FileName    *string `json:"file_name"`
}
