// Package store declares the persistence contracts the controllers
// depend on. The Postgres implementation lives in internal/repository;
// tests substitute in-memory fakes.
package store

import (
	"context"

	"todolist-api/internal/models"
)

// UserStore persists user accounts.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	ByID(ctx context.Context, id int64) (*models.User, error)
	ByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	All(ctx context.Context) ([]models.User, error)
}

// TodoStore persists todos and their collaborator sets.
type TodoStore interface {
	Create(ctx context.Context, todo *models.ToDo) error
	// ByID loads a todo together with its collaborator ids.
	ByID(ctx context.Context, id int64) (*models.ToDo, error)
	UpdateTitle(ctx context.Context, id int64, title string) error
	Delete(ctx context.Context, id int64) error
	All(ctx context.Context) ([]models.ToDo, error)
	ByOwner(ctx context.Context, ownerID int64) ([]models.ToDo, error)
	AddCollaborator(ctx context.Context, todoID, userID int64) error
	RemoveCollaborator(ctx context.Context, todoID, userID int64) error
}

// TaskStore persists tasks under their parent todos.
type TaskStore interface {
	Create(ctx context.Context, task *models.Task) error
	ByID(ctx context.Context, id int64) (*models.Task, error)
	Delete(ctx context.Context, id int64) error
	All(ctx context.Context) ([]models.Task, error)
	ByTodo(ctx context.Context, todoID int64) ([]models.Task, error)
}

// StateStore reads the fixed task lifecycle states.
type StateStore interface {
	ByID(ctx context.Context, id int64) (*models.State, error)
}

// RoleStore reads the fixed roles.
type RoleStore interface {
	ByID(ctx context.Context, id int64) (*models.Role, error)
}

// ActivityStore persists and reads the activity log.
type ActivityStore interface {
	Insert(ctx context.Context, event *models.Event) error
	Recent(ctx context.Context, limit int) ([]models.Event, error)
}

// Stores bundles every persistence contract for controller wiring.
type Stores struct {
	Users    UserStore
	Todos    TodoStore
	Tasks    TaskStore
	States   StateStore
	Roles    RoleStore
	Activity ActivityStore
}
