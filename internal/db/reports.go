package db

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/LeonSoftLab/SupportAPI/internal/model"
)

func scanReports(rows pgx.Rows) ([]model.Report, error) {
	defer rows.Close()

	var reports []model.Report
	for rows.Next() {
		var r model.Report
		if err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.CodeName, &r.FileName); err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

func (db *Postgres) GetReports(ctx context.Context) ([]model.Report, error) {
	query := `
		SELECT id, name, description, code_name, file_name
		FROM reports
		ORDER BY id
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanReports(rows)
}

func (db *Postgres) GetReportsByCodeName(ctx context.Context, codeName string) ([]model.Report, error) {
	query := `
		SELECT id, name, description, code_name, file_name
		FROM reports
		WHERE code_name = $1
		ORDER BY id
	`
	rows, err := db.Pool.Query(ctx, query, codeName)
	if err != nil {
		return nil, err
	}
	return scanReports(rows)
}

func (db *Postgres) CreateReport(ctx context.Context, r *model.Report) (*model.Report, error) {
	query := `
		INSERT INTO reports (name, description, code_name, file_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, code_name, file_name
	`
	var report model.Report
	err := db.Pool.QueryRow(ctx, query, r.Name, r.Description, r.CodeName, r.FileName).Scan(
		&report.ID, &report.Name, &report.Description, &report.CodeName, &report.FileName)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (db *Postgres) UpdateReport(ctx context.Context, r *model.Report) (*model.Report, error) {
	query := `
		UPDATE reports
		SET name = $2, description = $3, code_name = $4, file_name = $5
		WHERE id = $1
		RETURNING id, name, description, code_name, file_name
	`
	var report model.Report
	err := db.Pool.QueryRow(ctx, query, r.ID, r.Name, r.Description, r.CodeName, r.FileName).Scan(
		&report.ID, &report.Name, &report.Description, &report.CodeName, &report.FileName)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (db *Postgres) GetReportByID(ctx context.Context, id int) (*model.Report, error) {
	query := `
		SELECT id, name, description, code_name, file_name
		FROM reports
		WHERE id = $1
	`
	var report model.Report
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&report.ID, &report.Name, &report.Description, &report.CodeName, &report.FileName)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (db *Postgres) DeleteReport(ctx context.Context, id int) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
