package model

// Group is a command group ("project"); GroupRow is one command inside it.

type Group struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CodeName    string `json:"code_name"`
}

type GroupCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	CodeName    string `json:"code_name" binding:"required"`
}

type GroupUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CodeName    *string `json:"code_name"`
}

type GroupRow struct {
	ID          int    `json:"id"`
	GroupID     int    `json:"id_group"`
	Name        string `json:"name"`
	CommandText string `json:"command_text"`
	FileName    string `json:"file_name"`
}

type GroupRowCreateRequest struct {
	GroupID     int    `json:"id_group" binding:"required"`
	Name        string `json:"name" binding:"required"`
	CommandText string `json:"command_text" binding:"required"`
	FileName    string `json:"file_name" binding:"required"`
}
