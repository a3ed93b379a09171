package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"todolist-api/internal/apperr"
	"todolist-api/internal/auth"
	"todolist-api/internal/cache"
	"todolist-api/internal/dto"
	"todolist-api/internal/models"
	"todolist-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"
)

var listTodosGroup singleflight.Group

// CreateTodo creates a todo owned by the user in the path. Admin, or the
// owner creating for themselves.
func (h *Controller) CreateTodo(c *gin.Context) {
	ctx := c.Request.Context()
	p, ok := principal(c)
	if !ok {
		return
	}
	ownerID, ok := pathID(c, "owner_id")
	if !ok {
		return
	}
	if !auth.CanAccessUser(p, ownerID) {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	var req dto.ToDoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Wrap(apperr.Validation, err, "Invalid todo payload"))
		return
	}
	if _, err := h.stores.Users.ByID(ctx, ownerID); err != nil {
		fail(c, err)
		return
	}
	todo := &models.ToDo{
		Title:     req.Title,
		CreatedAt: time.Now(),
		OwnerID:   ownerID,
	}
	if err := h.stores.Todos.Create(ctx, todo); err != nil {
		fail(c, err)
		return
	}
	logger.Info(ctx, "Todo created", "todo_id", todo.ID, "owner_id", ownerID)
	h.publish(c, models.ActionCreate, models.EntityTodo, todo.ID, p.ID)
	c.Header("Location", fmt.Sprintf("/api/todos/%d", todo.ID))
	c.JSON(http.StatusCreated, dto.NewToDoResponse(todo))
}

// loadTodoFacts resolves a todo and its ownership facts. A missing todo
// is a NotFound failure, distinct from any later denial.
func (h *Controller) loadTodoFacts(c *gin.Context, id int64) (*models.ToDo, auth.TodoFacts, bool) {
	todo, err := h.stores.Todos.ByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return nil, auth.TodoFacts{}, false
	}
	return todo, auth.TodoFacts{OwnerID: todo.OwnerID, CollaboratorIDs: todo.CollaboratorIDs}, true
}

// ReadTodo returns one todo. Admin, owner, or collaborator.
func (h *Controller) ReadTodo(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	todo, facts, ok := h.loadTodoFacts(c, id)
	if !ok {
		return
	}
	if !auth.CanReadTodo(p, facts) {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	c.JSON(http.StatusOK, dto.NewToDoResponse(todo))
}

// UpdateTodo renames a todo. Admin or owner.
func (h *Controller) UpdateTodo(c *gin.Context) {
	ctx := c.Request.Context()
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ToDoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Wrap(apperr.Validation, err, "Invalid todo payload"))
		return
	}
	todo, facts, ok := h.loadTodoFacts(c, id)
	if !ok {
		return
	}
	if !auth.CanModifyTodo(p, facts) {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	if err := h.stores.Todos.UpdateTitle(ctx, id, req.Title); err != nil {
		fail(c, err)
		return
	}
	todo.Title = req.Title
	h.publish(c, models.ActionUpdate, models.EntityTodo, id, p.ID)
	c.Header("Location", fmt.Sprintf("/api/todos/%d", id))
	c.JSON(http.StatusCreated, dto.NewToDoResponse(todo))
}

// DeleteTodo removes a todo and, by cascade, its tasks and collaborator
// rows. Admin or owner.
func (h *Controller) DeleteTodo(c *gin.Context) {
	ctx := c.Request.Context()
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	_, facts, ok := h.loadTodoFacts(c, id)
	if !ok {
		return
	}
	if !auth.CanModifyTodo(p, facts) {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	if err := h.stores.Todos.Delete(ctx, id); err != nil {
		fail(c, err)
		return
	}
	logger.Info(ctx, "Todo deleted", "todo_id", id)
	h.publish(c, models.ActionDelete, models.EntityTodo, id, p.ID)
	c.Status(http.StatusNoContent)
}

// ListTodos returns every todo. Admin only. The listing is served from
// the Redis cache when warm; cold reads are collapsed with singleflight
// and repopulate the cache off the request path.
func (h *Controller) ListTodos(c *gin.Context) {
	ctx := c.Request.Context()
	p, ok := principal(c)
	if !ok {
		return
	}
	if !p.IsAdmin() {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	if b, found := cache.GetRawTodos(ctx); found {
		c.Data(http.StatusOK, "application/json", b)
		return
	}
	v, err, _ := listTodosGroup.Do("todos", func() (interface{}, error) {
		todos, err := h.stores.Todos.All(context.Background())
		if err != nil {
			return nil, err
		}
		return json.Marshal(dto.ToDoResponses(todos))
	})
	if err != nil {
		fail(c, err)
		return
	}
	b := v.([]byte)
	c.Data(http.StatusOK, "application/json", b)
	cache.SetRawTodosAsync(b)
}
