package repository

import (
	"context"
	"database/sql"
	"errors"

	"todolist-api/internal/apperr"
	"todolist-api/internal/models"
	"todolist-api/pkg/logger"
)

// Users is the Postgres-backed user store.
type Users struct {
	db *sql.DB
}

const userColumns = `u.id, u.first_name, u.last_name, u.email, u.password, u.role_id, r.name`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.RoleID, &u.RoleName)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a user and fills in the generated id.
func (r *Users) Create(ctx context.Context, user *models.User) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (first_name, last_name, email, password, role_id)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		user.FirstName, user.LastName, user.Email, user.Password, user.RoleID).Scan(&user.ID)
	if err != nil {
		logger.Error(ctx, "Repository create user failed", "error", err)
		return err
	}
	return nil
}

// ByID loads a user with its role name.
func (r *Users) ByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users u JOIN roles r ON r.id = u.role_id WHERE u.id = $1`, id)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFoundf("User with id %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ByEmail loads a user by its login identifier.
func (r *Users) ByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users u JOIN roles r ON r.id = u.role_id WHERE u.email = $1`, email)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFoundf("User with email %s not found", email)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Update overwrites name, email, and password wholesale.
func (r *Users) Update(ctx context.Context, user *models.User) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET first_name = $1, last_name = $2, email = $3, password = $4 WHERE id = $5`,
		user.FirstName, user.LastName, user.Email, user.Password, user.ID)
	if err != nil {
		logger.Error(ctx, "Repository update user failed", "error", err, "id", user.ID)
		return err
	}
	return notFoundIfZero(res, "User", user.ID)
}

// Delete removes a user; owned todos cascade at the schema level.
func (r *Users) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		logger.Error(ctx, "Repository delete user failed", "error", err, "id", id)
		return err
	}
	return notFoundIfZero(res, "User", id)
}

// All returns every user ordered by id.
func (r *Users) All(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users u JOIN roles r ON r.id = u.role_id ORDER BY u.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func notFoundIfZero(res sql.Result, entity string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFoundf("%s with id %d not found", entity, id)
	}
	return nil
}
