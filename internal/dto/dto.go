// Package dto holds the external request/response shapes. Field names
// follow the API's snake_case convention and stay decoupled from the
// internal model types.
package dto

import (
	"time"

	"todolist-api/internal/models"
)

// LoginRequest carries login credentials. The username is the account email.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserRequest is the create/update payload for a user. Any role supplied
// by the client is ignored; new users always get the USER role.
type UserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
}

// ToDoRequest is the create/update payload for a todo.
type ToDoRequest struct {
	Title string `json:"title" binding:"required"`
}

// TaskRequest is the create payload for a task. Priority must name one
// of the fixed enumeration values.
type TaskRequest struct {
	Name     string `json:"name" binding:"required"`
	Priority string `json:"priority" binding:"required"`
}

// UserResponse is the outward representation of a user.
type UserResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// NewUserResponse maps a user entity to its response shape.
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.RoleName,
	}
}

// UserResponses maps a slice of users.
func UserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

// ToDoResponse is the outward representation of a todo.
type ToDoResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	OwnerID   int64     `json:"owner_id"`
}

// NewToDoResponse maps a todo entity to its response shape.
func NewToDoResponse(t *models.ToDo) ToDoResponse {
	return ToDoResponse{
		ID:        t.ID,
		Title:     t.Title,
		CreatedAt: t.CreatedAt,
		OwnerID:   t.OwnerID,
	}
}

// ToDoResponses maps a slice of todos.
func ToDoResponses(todos []models.ToDo) []ToDoResponse {
	out := make([]ToDoResponse, 0, len(todos))
	for i := range todos {
		out = append(out, NewToDoResponse(&todos[i]))
	}
	return out
}

// TaskResponse is the outward representation of a task.
type TaskResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Priority string `json:"priority"`
	TodoID   int64  `json:"todo_id"`
	State    string `json:"state"`
}

// NewTaskResponse maps a task entity to its response shape.
func NewTaskResponse(t *models.Task) TaskResponse {
	return TaskResponse{
		ID:       t.ID,
		Name:     t.Name,
		Priority: string(t.Priority),
		TodoID:   t.TodoID,
		State:    t.State,
	}
}

// TaskResponses maps a slice of tasks.
func TaskResponses(tasks []models.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i]))
	}
	return out
}

// EventResponse is the outward representation of an activity event.
type EventResponse struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	Entity     string    `json:"entity"`
	EntityID   int64     `json:"entity_id"`
	ActorID    int64     `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventResponses maps a slice of events.
func EventResponses(events []models.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, EventResponse(e))
	}
	return out
}

// ErrorTimestampFormat is the layout of the error body timestamp.
const ErrorTimestampFormat = "2006-01-02 15:04:05"

// ErrorResponse is the uniform error body rendered by the translator.
type ErrorResponse struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
}

// NewErrorResponse builds an error body stamped with the current time.
func NewErrorResponse(status int, message string) ErrorResponse {
	return ErrorResponse{
		Timestamp: time.Now().Format(ErrorTimestampFormat),
		Status:    status,
		Error:     message,
	}
}
