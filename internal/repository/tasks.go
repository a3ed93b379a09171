package repository

import (
	"context"
	"database/sql"
	"errors"

	"todolist-api/internal/apperr"
	"todolist-api/internal/models"
	"todolist-api/pkg/logger"
)

// Tasks is the Postgres-backed task store.
type Tasks struct {
	db *sql.DB
}

const taskColumns = `t.id, t.name, t.priority, t.todo_id, t.state_id, s.name`

// Create inserts a task and fills in the generated id.
func (r *Tasks) Create(ctx context.Context, task *models.Task) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO tasks (name, priority, todo_id, state_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		task.Name, string(task.Priority), task.TodoID, task.StateID).Scan(&task.ID)
	if err != nil {
		logger.Error(ctx, "Repository create task failed", "error", err)
		return err
	}
	return nil
}

// ByID loads a task with its state name.
func (r *Tasks) ByID(ctx context.Context, id int64) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks t JOIN states s ON s.id = t.state_id WHERE t.id = $1`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFoundf("Task with id %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a single task.
func (r *Tasks) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		logger.Error(ctx, "Repository delete task failed", "error", err, "id", id)
		return err
	}
	return notFoundIfZero(res, "Task", id)
}

// All returns every task ordered by id.
func (r *Tasks) All(ctx context.Context) ([]models.Task, error) {
	return r.list(ctx,
		`SELECT `+taskColumns+` FROM tasks t JOIN states s ON s.id = t.state_id ORDER BY t.id`)
}

// ByTodo returns the tasks of one todo ordered by id.
func (r *Tasks) ByTodo(ctx context.Context, todoID int64) ([]models.Task, error) {
	return r.list(ctx,
		`SELECT `+taskColumns+` FROM tasks t JOIN states s ON s.id = t.state_id WHERE t.todo_id = $1 ORDER BY t.id`,
		todoID)
}

func (r *Tasks) list(ctx context.Context, query string, args ...interface{}) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func scanTask(row interface{ Scan(...interface{}) error }) (*models.Task, error) {
	var t models.Task
	var priority string
	if err := row.Scan(&t.ID, &t.Name, &priority, &t.TodoID, &t.StateID, &t.State); err != nil {
		return nil, err
	}
	t.Priority = models.Priority(priority)
	return &t, nil
}
