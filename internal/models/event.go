package models

import "time"

// Event actions.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Event entities.
const (
	EntityUser         = "user"
	EntityTodo         = "todo"
	EntityTask         = "task"
	EntityCollaborator = "collaborator"
)

// Event is an activity record published to Kafka after a successful
// mutation and persisted to the activity log by the worker.
type Event struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	Entity     string    `json:"entity"`
	EntityID   int64     `json:"entity_id"`
	ActorID    int64     `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
