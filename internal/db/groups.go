package db

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/LeonSoftLab/SupportAPI/internal/model"
)

func scanGroups(rows pgx.Rows) ([]model.Group, error) {
	defer rows.Close()

	var groups []model.Group
	for rows.Next() {
		var g model.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.CodeName); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func scanGroupRows(rows pgx.Rows) ([]model.GroupRow, error) {
	defer rows.Close()

	var result []model.GroupRow
	for rows.Next() {
		var r model.GroupRow
		if err := rows.Scan(&r.ID, &r.GroupID, &r.Name, &r.CommandText, &r.FileName); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (db *Postgres) GetGroups(ctx context.Context) ([]model.Group, error) {
	query := `
		SELECT id, name, description, code_name
		FROM groups
		ORDER BY id
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanGroups(rows)
}

func (db *Postgres) GetGroupsByCodeName(ctx context.Context, codeName string) ([]model.Group, error) {
	query := `
		SELECT id, name, description, code_name
		FROM groups
		WHERE code_name = $1
		ORDER BY id
	`
	rows, err := db.Pool.Query(ctx, query, codeName)
	if err != nil {
		return nil, err
	}
	return scanGroups(rows)
}

func (db *Postgres) CreateGroup(ctx context.Context, g *model.Group) (*model.Group, error) {
	query := `
		INSERT INTO groups (name, description, code_name)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, code_name
	`
	var group model.Group
	err := db.Pool.QueryRow(ctx, query, g.Name, g.Description, g.CodeName).Scan(
		&group.ID, &group.Name, &group.Description, &group.CodeName)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (db *Postgres) UpdateGroup(ctx context.Context, g *model.Group) (*model.Group, error) {
	query := `
		UPDATE groups
		SET name = $2, description = $3, code_name = $4
		WHERE id = $1
		RETURNING id, name, description, code_name
	`
	var group model.Group
	err := db.Pool.QueryRow(ctx, query, g.ID, g.Name, g.Description, g.CodeName).Scan(
		&group.ID, &group.Name, &group.Description, &group.CodeName)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (db *Postgres) GetGroupByID(ctx context.Context, id int) (*model.Group, error) {
	query := `
		SELECT id, name, description, code_name
		FROM groups
		WHERE id = $1
	`
	var group model.Group
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&group.ID, &group.Name, &group.Description, &group.CodeName)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (db *Postgres) DeleteGroup(ctx context.Context, id int) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (db *Postgres) GetGroupRowsByGroup(ctx context.Context, groupID int) ([]model.GroupRow, error) {
	query := `
		SELECT id, id_group, name, command_text, file_name
		FROM group_rows
		WHERE id_group = $1
		ORDER BY id
	`
	rows, err := db.Pool.Query(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	return scanGroupRows(rows)
}

// GetGroupRowsByCodeNames resolves a "<group>_<command>" pair: rows whose
// command_text matches, inside the group with the given code name.
func (db *Postgres) GetGroupRowsByCodeNames(ctx context.Context, groupCode, commandText string) ([]model.GroupRow, error) {
	query := `
		SELECT DISTINCT gr.id, gr.id_group, gr.name, gr.command_text, gr.file_name
		FROM groups g
		INNER JOIN group_rows gr ON gr.id_group = g.id
		WHERE g.code_name = $1 AND gr.command_text = $2
		ORDER BY gr.id
	`
	rows, err := db.Pool.Query(ctx, query, groupCode, commandText)
	if err != nil {
		return nil, err
	}
	return scanGroupRows(rows)
}

func (db *Postgres) CreateGroupRow(ctx context.Context, r *model.GroupRow) (*model.GroupRow, error) {
	query := `
		INSERT INTO group_rows (id_group, name, command_text, file_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, id_group, name, command_text, file_name
	`
	var row model.GroupRow
	err := db.Pool.QueryRow(ctx, query, r.GroupID, r.Name, r.CommandText, r.FileName).Scan(
		&row.ID, &row.GroupID, &row.Name, &row.CommandText, &row.FileName)
	if err != nil {
		return nil, err
	}
	return &row, nil
}
