package store

import (
	"context"
	"database/sql"

	"tasktrack/internal/apperr"
)

// The FK on tasks.owner_id deliberately has no ON DELETE clause: user
// deletion is out of scope and should fail fast rather than orphan or
// cascade tasks.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    login VARCHAR(255) NOT NULL UNIQUE,
    email VARCHAR(255) NOT NULL UNIQUE,
    password_hash VARCHAR(255) NOT NULL,
    first_name VARCHAR(255) NOT NULL DEFAULT '',
    last_name VARCHAR(255) NOT NULL DEFAULT '',
    created_at DATE NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
    id SERIAL PRIMARY KEY,
    title VARCHAR(255) NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    status VARCHAR(255) NOT NULL,
    start_date DATE NOT NULL,
    end_date DATE NOT NULL,
    owner_id INT NOT NULL REFERENCES users (id)
);

CREATE INDEX IF NOT EXISTS tasks_owner_id_idx ON tasks (owner_id);
`

// CreateTables bootstraps the schema. Idempotent.
func CreateTables(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		return apperr.Storage("create tables", err)
	}
	return nil
}

// DropTables removes the schema. Used by tests to reset state.
func DropTables(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS tasks; DROP TABLE IF EXISTS users;`); err != nil {
		return apperr.Storage("drop tables", err)
	}
	return nil
}
