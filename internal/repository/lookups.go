package repository

import (
	"context"
	"database/sql"
	"errors"

	"todolist-api/internal/apperr"
	"todolist-api/internal/models"
)

// States reads the fixed task lifecycle states.
type States struct {
	db *sql.DB
}

func (r *States) ByID(ctx context.Context, id int64) (*models.State, error) {
	var s models.State
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM states WHERE id = $1`, id).
		Scan(&s.ID, &s.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFoundf("State with id %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Roles reads the fixed authorization roles.
type Roles struct {
	db *sql.DB
}

func (r *Roles) ByID(ctx context.Context, id int64) (*models.Role, error) {
	var role models.Role
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM roles WHERE id = $1`, id).
		Scan(&role.ID, &role.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFoundf("Role with id %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}
