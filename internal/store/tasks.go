package store

import (
	"context"
	"database/sql"

	"tasktrack/internal/models"
)

const (
	queryInsertTask = `INSERT INTO tasks (title, description, status, start_date, end_date, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	queryTaskByID = `SELECT id, title, description, status, start_date, end_date, owner_id
		FROM tasks WHERE id = $1`
	queryListTasks = `SELECT id, title, description, status, start_date, end_date, owner_id
		FROM tasks ORDER BY id`
	queryUpdateTask = `UPDATE tasks SET title = $1, description = $2, status = $3,
		start_date = $4, end_date = $5, owner_id = $6 WHERE id = $7 RETURNING id`
	queryDeleteTask = `DELETE FROM tasks WHERE id = $1
		RETURNING id, title, description, status, start_date, end_date, owner_id`
)

// CreateTask inserts a task. The foreign key on owner_id guarantees the
// owner exists at insert time; a missing owner surfaces as apperr.ErrNoOwner
// and no row is created.
func (s *Store) CreateTask(ctx context.Context, f models.TaskFields) (models.Task, error) {
	var task models.Task
	task.Overwrite(f)
	err := s.session(ctx, "insert task", func(conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, queryInsertTask,
			f.Title, f.Description, f.Status, f.StartDate, f.EndDate, f.OwnerID,
		).Scan(&task.ID)
		return mapDBError("insert task", err)
	})
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// TaskByID loads a single task.
func (s *Store) TaskByID(ctx context.Context, id int) (models.Task, error) {
	var task models.Task
	err := s.session(ctx, "select task", func(conn *sql.Conn) error {
		return mapDBError("select task", scanTask(conn.QueryRowContext(ctx, queryTaskByID, id), &task))
	})
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// ListTasks returns all tasks ordered by id.
func (s *Store) ListTasks(ctx context.Context) ([]models.Task, error) {
	tasks := []models.Task{}
	err := s.session(ctx, "list tasks", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, queryListTasks)
		if err != nil {
			return mapDBError("list tasks", err)
		}
		defer rows.Close()

		for rows.Next() {
			var task models.Task
			if err := rows.Scan(
				&task.ID, &task.Title, &task.Description, &task.Status,
				&task.StartDate, &task.EndDate, &task.OwnerID,
			); err != nil {
				return mapDBError("scan task", err)
			}
			tasks = append(tasks, task)
		}
		return mapDBError("list tasks", rows.Err())
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTask overwrites every mutable field of the task with f. There is no
// partial update: callers supply the full field set and all of it is
// written back.
func (s *Store) UpdateTask(ctx context.Context, id int, f models.TaskFields) (models.Task, error) {
	task := models.Task{ID: id}
	task.Overwrite(f)
	err := s.session(ctx, "update task", func(conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, queryUpdateTask,
			f.Title, f.Description, f.Status, f.StartDate, f.EndDate, f.OwnerID, id,
		).Scan(&task.ID)
		return mapDBError("update task", err)
	})
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// DeleteTask removes a task and returns the deleted record.
func (s *Store) DeleteTask(ctx context.Context, id int) (models.Task, error) {
	var task models.Task
	err := s.session(ctx, "delete task", func(conn *sql.Conn) error {
		return mapDBError("delete task", scanTask(conn.QueryRowContext(ctx, queryDeleteTask, id), &task))
	})
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func scanTask(row *sql.Row, task *models.Task) error {
	return row.Scan(
		&task.ID, &task.Title, &task.Description, &task.Status,
		&task.StartDate, &task.EndDate, &task.OwnerID,
	)
}
