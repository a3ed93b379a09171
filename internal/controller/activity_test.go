package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"todolist-api/internal/dto"
	"todolist-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestListActivityAdminOnly(t *testing.T) {
	assert := assert.New(t)
	env := newEnv(t)
	admin := env.addUser(t, "Ada", "admin@example.com", "pw", models.RoleAdminID)
	alice := env.addUser(t, "Alice", "alice@example.com", "pw", models.RoleUserID)

	for i, action := range []string{models.ActionCreate, models.ActionUpdate, models.ActionDelete} {
		err := env.stores.Activity.Insert(context.Background(), &models.Event{
			ID:         string(rune('a' + i)),
			Action:     action,
			Entity:     models.EntityTodo,
			EntityID:   1,
			ActorID:    alice.ID,
			OccurredAt: time.Now(),
		})
		assert.Nil(err)
	}

	assert.Equal(http.StatusUnauthorized, env.do(t, http.MethodGet, "/api/activity", "", bearer(t, alice)).Code)

	w := env.do(t, http.MethodGet, "/api/activity", "", bearer(t, admin))
	assert.Equal(http.StatusOK, w.Code)
	var events []dto.EventResponse
	assert.Nil(json.Unmarshal(w.Body.Bytes(), &events))
	assert.Len(events, 3)
	// newest first
	assert.Equal(models.ActionDelete, events[0].Action)

	w = env.do(t, http.MethodGet, "/api/activity?limit=2", "", bearer(t, admin))
	assert.Equal(http.StatusOK, w.Code)
	events = nil
	assert.Nil(json.Unmarshal(w.Body.Bytes(), &events))
	assert.Len(events, 2)
}
