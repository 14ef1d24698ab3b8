package store

import (
	"context"
	"database/sql"

	"tasktrack/internal/models"
)

const (
	queryInsertUser = `INSERT INTO users (login, email, password_hash, first_name, last_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	queryUserByID = `SELECT id, login, email, first_name, last_name, created_at
		FROM users WHERE id = $1`
	queryUserByLogin = `SELECT id, login, email, password_hash, first_name, last_name, created_at
		FROM users WHERE login = $1`
	queryListUsers = `SELECT id, login, email, first_name, last_name, created_at
		FROM users ORDER BY id`
)

// CreateUser inserts a new user. The unique constraints on login and email
// make the existence check atomic with the insert: a concurrent duplicate
// registration surfaces as apperr.ErrConflict.
func (s *Store) CreateUser(ctx context.Context, nu models.NewUser) (models.User, error) {
	user := models.User{
		Login:     nu.Login,
		Email:     nu.Email,
		FirstName: nu.FirstName,
		LastName:  nu.LastName,
		CreatedAt: nu.CreatedAt,
	}
	err := s.session(ctx, "insert user", func(conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, queryInsertUser,
			nu.Login, nu.Email, nu.PasswordHash, nu.FirstName, nu.LastName, nu.CreatedAt,
		).Scan(&user.ID)
		return mapDBError("insert user", err)
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UserByID loads a user without the password hash.
func (s *Store) UserByID(ctx context.Context, id int) (models.User, error) {
	var user models.User
	err := s.session(ctx, "select user by id", func(conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, queryUserByID, id).Scan(
			&user.ID, &user.Login, &user.Email, &user.FirstName, &user.LastName, &user.CreatedAt,
		)
		return mapDBError("select user by id", err)
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UserByLogin loads a user including the password hash. This is the only
// query that reads the hash; it exists solely for credential verification.
func (s *Store) UserByLogin(ctx context.Context, login string) (models.User, error) {
	var user models.User
	err := s.session(ctx, "select user by login", func(conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, queryUserByLogin, login).Scan(
			&user.ID, &user.Login, &user.Email, &user.PasswordHash,
			&user.FirstName, &user.LastName, &user.CreatedAt,
		)
		return mapDBError("select user by login", err)
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ListUsers returns all users, hashless, ordered by id.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := s.session(ctx, "list users", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, queryListUsers)
		if err != nil {
			return mapDBError("list users", err)
		}
		defer rows.Close()

		for rows.Next() {
			var user models.User
			if err := rows.Scan(
				&user.ID, &user.Login, &user.Email, &user.FirstName, &user.LastName, &user.CreatedAt,
			); err != nil {
				return mapDBError("scan user", err)
			}
			users = append(users, user)
		}
		return mapDBError("list users", rows.Err())
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}
