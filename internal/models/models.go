package models

import "time"

// Fixed role identifiers seeded by the schema migration.
const (
	RoleAdminID int64 = 1
	RoleUserID  int64 = 2

	RoleAdminName = "ADMIN"
	RoleUserName  = "USER"
)

// StateNewID is the lifecycle state assigned to every freshly created task.
const StateNewID int64 = 1

// Role is one of the fixed authorization roles.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// User is an account that owns todos and may collaborate on others.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"-"` // bcrypt hash, never serialized
	RoleID    int64  `json:"role_id"`
	RoleName  string `json:"role"`
}

// State is one of the fixed task lifecycle labels.
type State struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToDo is a named list with exactly one owner and an unordered set of
// collaborators distinct from the owner.
type ToDo struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	CreatedAt       time.Time `json:"created_at"`
	OwnerID         int64     `json:"owner_id"`
	CollaboratorIDs []int64   `json:"collaborator_ids,omitempty"`
}

// HasCollaborator reports whether the given user is in the collaborator set.
func (t *ToDo) HasCollaborator(userID int64) bool {
	for _, id := range t.CollaboratorIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Task is a unit of work inside a todo.
type Task struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Priority Priority `json:"priority"`
	TodoID   int64    `json:"todo_id"`
	StateID  int64    `json:"state_id"`
	State    string   `json:"state"`
}
