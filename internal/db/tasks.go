package db

import (
	"context"

	"github.com/LeonSoftLab/SupportAPI/internal/model"
)

func (db *Postgres) GetTasksByEmployee(ctx context.Context, employeeID, limit, offset int) ([]model.Task, error) {
	query := `
		SELECT id, id_employee, last_context, message_text
		FROM dh_tasks
		WHERE id_employee = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`
	rows, err := db.Pool.Query(ctx, query, employeeID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.EmployeeID, &t.LastContext, &t.MessageText); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (db *Postgres) GetTaskByID(ctx context.Context, id, employeeID int) (*model.Task, error) {
	query := `
		SELECT id, id_employee, last_context, message_text
		FROM dh_tasks
		WHERE id = $1 AND id_employee = $2
	`
	var task model.Task
	err := db.Pool.QueryRow(ctx, query, id, employeeID).Scan(
		&task.ID, &task.EmployeeID, &task.LastContext, &task.MessageText)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (db *Postgres) CreateTask(ctx context.Context, t *model.Task) (*model.Task, error) {
	query := `
		INSERT INTO dh_tasks (id_employee, last_context, message_text)
		VALUES ($1, $2, $3)
		RETURNING id, id_employee, last_context, message_text
	`
	var task model.Task
	err := db.Pool.QueryRow(ctx, query, t.EmployeeID, t.LastContext, t.MessageText).Scan(
		&task.ID, &task.EmployeeID, &task.LastContext, &task.MessageText)
	if err != nil {
		return nil, err
	}
	return &task, nil
}
