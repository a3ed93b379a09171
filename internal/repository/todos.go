package repository

import (
	"context"
	"database/sql"
	"errors"

	"todolist-api/internal/apperr"
	"todolist-api/internal/models"
	"todolist-api/pkg/logger"
)

// Todos is the Postgres-backed todo store.
type Todos struct {
	db *sql.DB
}

// Create inserts a todo and fills in the generated id.
func (r *Todos) Create(ctx context.Context, todo *models.ToDo) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO todos (title, created_at, owner_id) VALUES ($1, $2, $3) RETURNING id`,
		todo.Title, todo.CreatedAt, todo.OwnerID).Scan(&todo.ID)
	if err != nil {
		logger.Error(ctx, "Repository create todo failed", "error", err)
		return err
	}
	return nil
}

// ByID loads a todo together with its collaborator ids.
func (r *Todos) ByID(ctx context.Context, id int64) (*models.ToDo, error) {
	var t models.ToDo
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, created_at, owner_id FROM todos WHERE id = $1`, id).
		Scan(&t.ID, &t.Title, &t.CreatedAt, &t.OwnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFoundf("ToDo with id %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id FROM todo_collaborators WHERE todo_id = $1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		t.CollaboratorIDs = append(t.CollaboratorIDs, userID)
	}
	return &t, rows.Err()
}

// UpdateTitle renames a todo.
func (r *Todos) UpdateTitle(ctx context.Context, id int64, title string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE todos SET title = $1 WHERE id = $2`, title, id)
	if err != nil {
		logger.Error(ctx, "Repository update todo failed", "error", err, "id", id)
		return err
	}
	return notFoundIfZero(res, "ToDo", id)
}

// Delete removes a todo; its tasks and collaborator rows cascade.
func (r *Todos) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		logger.Error(ctx, "Repository delete todo failed", "error", err, "id", id)
		return err
	}
	return notFoundIfZero(res, "ToDo", id)
}

// All returns every todo, newest first.
func (r *Todos) All(ctx context.Context) ([]models.ToDo, error) {
	return r.list(ctx,
		`SELECT id, title, created_at, owner_id FROM todos ORDER BY created_at DESC`)
}

// ByOwner returns the todos owned by a user, newest first.
func (r *Todos) ByOwner(ctx context.Context, ownerID int64) ([]models.ToDo, error) {
	return r.list(ctx,
		`SELECT id, title, created_at, owner_id FROM todos WHERE owner_id = $1 ORDER BY created_at DESC`,
		ownerID)
}

func (r *Todos) list(ctx context.Context, query string, args ...interface{}) ([]models.ToDo, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var todos []models.ToDo
	for rows.Next() {
		var t models.ToDo
		if err := rows.Scan(&t.ID, &t.Title, &t.CreatedAt, &t.OwnerID); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

// AddCollaborator inserts a membership row. A concurrent duplicate add
// surfaces as a pq unique violation.
func (r *Todos) AddCollaborator(ctx context.Context, todoID, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO todo_collaborators (todo_id, user_id) VALUES ($1, $2)`, todoID, userID)
	if err != nil {
		logger.Error(ctx, "Repository add collaborator failed", "error", err, "todo_id", todoID, "user_id", userID)
	}
	return err
}

// RemoveCollaborator deletes a membership row. Removing a non-member is
// a no-op success.
func (r *Todos) RemoveCollaborator(ctx context.Context, todoID, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM todo_collaborators WHERE todo_id = $1 AND user_id = $2`, todoID, userID)
	if err != nil {
		logger.Error(ctx, "Repository remove collaborator failed", "error", err, "todo_id", todoID, "user_id", userID)
	}
	return err
}
