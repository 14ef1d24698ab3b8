package store

import (
	"context"
	"errors"
	"time"

	"tasktrack/internal/apperr"
	"tasktrack/internal/models"
)

// Hasher is the password hasher the seeder needs; satisfied by auth.Passwords.
type Hasher interface {
	Hash(plaintext string) (string, error)
}

// Seed inserts a small sample data set for local development: three users
// and one task each. Users that already exist are skipped, so seeding is
// safe to run on every startup.
func Seed(ctx context.Context, s *Store, hasher Hasher) error {
	sample := []struct {
		login, email, password, first, last string
		task                                models.TaskFields
	}{
		{"alice", "alice@example.com", "pass123", "Alice", "Anderson",
			models.TaskFields{Title: "Task 1", Description: "Description for Task 1", Status: "pending"}},
		{"bob", "bob@example.com", "pass456", "Bob", "Brown",
			models.TaskFields{Title: "Task 2", Description: "Description for Task 2", Status: "pending"}},
		{"charlie", "charlie@example.com", "pass789", "Charlie", "Clark",
			models.TaskFields{Title: "Task 3", Description: "Description for Task 3", Status: "pending"}},
	}

	today := models.DateOf(time.Now())
	for _, row := range sample {
		hash, err := hasher.Hash(row.password)
		if err != nil {
			return err
		}
		user, err := s.CreateUser(ctx, models.NewUser{
			Login:        row.login,
			Email:        row.email,
			PasswordHash: hash,
			FirstName:    row.first,
			LastName:     row.last,
			CreatedAt:    today,
		})
		if errors.Is(err, apperr.ErrConflict) {
			continue
		}
		if err != nil {
			return err
		}

		task := row.task
		task.StartDate = today
		task.EndDate = models.DateOf(time.Now().AddDate(0, 0, 7))
		task.OwnerID = user.ID
		if _, err := s.CreateTask(ctx, task); err != nil {
			return err
		}
	}
	return nil
}
