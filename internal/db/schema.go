package db

import "context"

// EnsureSchema creates the application tables when they do not exist yet.
func (db *Postgres) EnsureSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS users (
			user_name VARCHAR(15) PRIMARY KEY,
			id_employee INTEGER NOT NULL DEFAULT 0,
			disabled BOOLEAN NOT NULL DEFAULT FALSE,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user' CHECK (role IN ('user', 'admin'))
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS reports (
			id SERIAL PRIMARY KEY,
			name VARCHAR(50) NOT NULL,
			description VARCHAR(255) NOT NULL,
			code_name VARCHAR(50) NOT NULL,
			file_name VARCHAR(255) NOT NULL
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS groups (
			id SERIAL PRIMARY KEY,
			name VARCHAR(50) NOT NULL,
			description VARCHAR(255) NOT NULL,
			code_name VARCHAR(50) NOT NULL
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS group_rows (
			id SERIAL PRIMARY KEY,
			id_group INTEGER NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			command_text VARCHAR(50) NOT NULL,
			file_name VARCHAR(255) NOT NULL
		)
		`,
		`CREATE INDEX IF NOT EXISTS group_rows_id_group_idx ON group_rows(id_group)`,
		`
		CREATE TABLE IF NOT EXISTS dh_tasks (
			id SERIAL PRIMARY KEY,
			id_employee INTEGER NOT NULL,
			last_context VARCHAR(50) NOT NULL,
			message_text VARCHAR(255) NOT NULL
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS logevents (
			id SERIAL PRIMARY KEY,
			id_user INTEGER NOT NULL,
			chat_id TEXT NOT NULL DEFAULT '',
			datetimestamp TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			event TEXT NOT NULL,
			status TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)
		`,
		`CREATE INDEX IF NOT EXISTS logevents_id_user_idx ON logevents(id_user, datetimestamp)`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}
