package db

import (
	"context"
	"time"

	"github.com/LeonSoftLab/SupportAPI/internal/model"
)

func (db *Postgres) GetLogEvents(ctx context.Context, employeeID int, start, end time.Time, limit, offset int) ([]model.LogEvent, error) {
	query := `
		SELECT id, id_user, chat_id, datetimestamp, event, status, description
		FROM logevents
		WHERE id_user = $1 AND datetimestamp BETWEEN $2 AND $3
		ORDER BY datetimestamp
		LIMIT $4 OFFSET $5
	`
	rows, err := db.Pool.Query(ctx, query, employeeID, start, end, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.LogEvent
	for rows.Next() {
		var e model.LogEvent
		err := rows.Scan(&e.ID, &e.EmployeeID, &e.ChatID, &e.Timestamp, &e.Event, &e.Status, &e.Description)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (db *Postgres) InsertLogEvent(ctx context.Context, e *model.LogEvent) error {
	query := `
		INSERT INTO logevents (id_user, chat_id, datetimestamp, event, status, description)
		VALUES ($1, $2, NOW(), $3, $4, $5)
	`
	_, err := db.Pool.Exec(ctx, query, e.EmployeeID, e.ChatID, e.Event, e.Status, e.Description)
	return err
}
