package model

import "time"

type LogEvent struct {
	ID          int       `json:"id"`
	EmployeeID  int       `json:"id_user"`
	ChatID      string    `json:"chat_id"`
	Timestamp   time.Time `json:"datetimestamp"`
	Event       string    `json:"event"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
}
