// Package repository implements the store contracts over Postgres via
// database/sql and lib/pq. Missing rows surface as apperr.NotFound;
// integrity violations propagate as raw *pq.Error for the translator to
// classify.
package repository

import (
	"database/sql"

	"todolist-api/internal/store"
)

// New wires the Postgres-backed stores over a shared connection pool.
func New(db *sql.DB) store.Stores {
	return store.Stores{
		Users:    &Users{db: db},
		Todos:    &Todos{db: db},
		Tasks:    &Tasks{db: db},
		States:   &States{db: db},
		Roles:    &Roles{db: db},
		Activity: &Activity{db: db},
	}
}
