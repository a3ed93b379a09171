package database

import (
	"context"
	"fmt"

	"todolist-api/pkg/logger"
)

// schemaSQL is the idempotent schema: fixed roles and states are seeded
// with stable ids (ADMIN=1, USER=2; NEW=1). Todos cascade to tasks and
// collaborator rows; deleting a user cascades to owned todos.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS roles (
	id   BIGINT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS users (
	id         BIGSERIAL PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name  TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	role_id    BIGINT NOT NULL REFERENCES roles(id)
);

CREATE TABLE IF NOT EXISTS states (
	id   BIGINT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS todos (
	id         BIGSERIAL PRIMARY KEY,
	title      TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	owner_id   BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS todo_collaborators (
	todo_id BIGINT NOT NULL REFERENCES todos(id) ON DELETE CASCADE,
	user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	PRIMARY KEY (todo_id, user_id)
);

CREATE TABLE IF NOT EXISTS tasks (
	id       BIGSERIAL PRIMARY KEY,
	name     TEXT NOT NULL,
	priority TEXT NOT NULL,
	todo_id  BIGINT NOT NULL REFERENCES todos(id) ON DELETE CASCADE,
	state_id BIGINT NOT NULL REFERENCES states(id)
);

CREATE TABLE IF NOT EXISTS activity_log (
	id          BIGSERIAL PRIMARY KEY,
	event_id    TEXT NOT NULL UNIQUE,
	action      TEXT NOT NULL,
	entity      TEXT NOT NULL,
	entity_id   BIGINT NOT NULL,
	actor_id    BIGINT NOT NULL,
	occurred_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_todos_owner ON todos(owner_id);
CREATE INDEX IF NOT EXISTS idx_tasks_todo ON tasks(todo_id);

INSERT INTO roles (id, name) VALUES (1, 'ADMIN'), (2, 'USER')
	ON CONFLICT (id) DO NOTHING;
INSERT INTO states (id, name) VALUES (1, 'NEW'), (2, 'DOING'), (3, 'VERIFY'), (4, 'DONE')
	ON CONFLICT (id) DO NOTHING;
`

// MigrateOrCreateSchema creates tables and seed rows if missing. Safe to
// run on every start.
func MigrateOrCreateSchema(ctx context.Context) error {
	db := DB(ctx)
	if db == nil {
		return fmt.Errorf("database is not available")
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	logger.Info(ctx, "Database schema ensured")
	return nil
}
