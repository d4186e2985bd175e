package model

type Task struct {
	ID          int    `json:"id"`
	EmployeeID  int    `json:"id_employee"`
	LastContext string `json:"last_context"`
	MessageText string `json:"message_text"`
}

type TaskCreateRequest struct {
	LastContext string `json:"last_context" binding:"required"`
	MessageText string `json:"message_text" binding:"required"`
}
