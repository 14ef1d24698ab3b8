// Package store is the relational data layer: the user directory, the task
// registry and the session boundary every operation runs inside.
//
// Uniqueness and referential integrity are enforced by Postgres constraints,
// not application locks; the loser of a constraint race gets a typed error
// from the apperr taxonomy instead of a crash or a duplicate row.
package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"tasktrack/internal/apperr"
)

// Postgres error codes for constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Store runs directory and registry operations against a SQL database.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// session is the scoped unit of work: one dedicated connection per logical
// operation, released on every exit path by the deferred Close. Callers
// never see the connection outside fn.
func (s *Store) session(ctx context.Context, op string, fn func(conn *sql.Conn) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return apperr.Storage(op, err)
	}
	defer conn.Close()
	return fn(conn)
}

// mapDBError converts driver-level failures into the shared taxonomy.
// Anything unclassified becomes an opaque StorageError carrying op for the
// error log.
func mapDBError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return apperr.ErrConflict
		case pgForeignKeyViolation:
			return apperr.ErrNoOwner
		}
	}
	return apperr.Storage(op, err)
}
