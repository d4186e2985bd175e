package db

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/LeonSoftLab/SupportAPI/internal/model"
)

func scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	var role string
	err := row.Scan(
		&user.Username,
		&user.EmployeeID,
		&user.Disabled,
		&user.PasswordHash,
		&role,
	)
	if err != nil {
		return nil, err
	}
	// Role is validated here, at the directory boundary.
	user.Role, err = model.ParseRole(role)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
		INSERT INTO users (user_name, id_employee, disabled, password, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_name, id_employee, disabled, password, role
	`
	row := db.Pool.QueryRow(ctx, query,
		user.Username, user.EmployeeID, user.Disabled, user.PasswordHash, string(user.Role))
	return scanUser(row)
}

func (db *Postgres) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `
		SELECT user_name, id_employee, disabled, password, role
		FROM users
		WHERE user_name = $1
	`
	return scanUser(db.Pool.QueryRow(ctx, query, username))
}

// FindByUsername implements the auth Directory contract: absent users are
// (nil, nil), errors mean the database is unreachable.
func (db *Postgres) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := db.GetUserByUsername(ctx, username)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (db *Postgres) GetUsers(ctx context.Context) ([]model.User, error) {
	query := `
		SELECT user_name, id_employee, disabled, password, role
		FROM users
		ORDER BY user_name
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (db *Postgres) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
		UPDATE users
		SET id_employee = $2, disabled = $3, password = $4, role = $5
		WHERE user_name = $1
		RETURNING user_name, id_employee, disabled, password, role
	`
	row := db.Pool.QueryRow(ctx, query,
		user.Username, user.EmployeeID, user.Disabled, user.PasswordHash, string(user.Role))
	return scanUser(row)
}

// DisableUser is the soft delete: the row stays, the account stops passing
// the active gate.
func (db *Postgres) DisableUser(ctx context.Context, username string) (*model.User, error) {
	query := `
		UPDATE users
		SET disabled = TRUE
		WHERE user_name = $1
		RETURNING user_name, id_employee, disabled, password, role
	`
	return scanUser(db.Pool.QueryRow(ctx, query, username))
}
