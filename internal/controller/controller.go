// Package controller implements the HTTP handlers. Handlers parse input,
// consult the authorization evaluator, call the stores, and map entities
// to response DTOs. Failures are attached to the gin error list and
// rendered by the translator middleware; handlers never write error
// bodies themselves.
package controller

import (
	"strconv"
	"time"

	"todolist-api/internal/apperr"
	"todolist-api/internal/auth"
	"todolist-api/internal/models"
	"todolist-api/internal/queue"
	"todolist-api/internal/store"
	"todolist-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Controller bundles the handlers over the persistence contracts.
type Controller struct {
	stores store.Stores
}

// New builds a Controller over the given stores.
func New(stores store.Stores) *Controller {
	return &Controller{stores: stores}
}

func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// principal extracts the authenticated principal placed into the request
// context by the auth middleware.
func principal(c *gin.Context) (auth.Principal, bool) {
	p, ok := auth.PrincipalFrom(c.Request.Context())
	if !ok {
		fail(c, apperr.AccessDeniedf("Authentication required"))
	}
	return p, ok
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		fail(c, apperr.Validationf("Invalid path parameter %q", name))
		return 0, false
	}
	return id, true
}

// publish emits an activity event after a successful mutation. A publish
// failure is logged and never fails the request.
func (h *Controller) publish(c *gin.Context, action, entity string, entityID, actorID int64) {
	ctx := c.Request.Context()
	event := &models.Event{
		ID:         uuid.New().String(),
		Action:     action,
		Entity:     entity,
		EntityID:   entityID,
		ActorID:    actorID,
		OccurredAt: time.Now(),
	}
	if err := queue.PublishEvent(ctx, event); err != nil {
		logger.Warn(ctx, "Activity event publish failed", "error", err, "entity", entity, "action", action)
	}
}
