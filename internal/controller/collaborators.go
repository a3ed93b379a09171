package controller

import (
	"net/http"

	"todolist-api/internal/apperr"
	"todolist-api/internal/auth"
	"todolist-api/internal/dto"
	"todolist-api/internal/models"
	"todolist-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// collaboratorResponses resolves the collaborator id set to user DTOs.
func (h *Controller) collaboratorResponses(c *gin.Context, todo *models.ToDo) ([]dto.UserResponse, bool) {
	ctx := c.Request.Context()
	out := make([]dto.UserResponse, 0, len(todo.CollaboratorIDs))
	for _, id := range todo.CollaboratorIDs {
		user, err := h.stores.Users.ByID(ctx, id)
		if err != nil {
			fail(c, err)
			return nil, false
		}
		out = append(out, dto.NewUserResponse(user))
	}
	return out, true
}

// ListCollaborators returns a todo's collaborators. Requires read access
// to the todo.
func (h *Controller) ListCollaborators(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	todo, facts, ok := h.loadTodoFacts(c, todoID)
	if !ok {
		return
	}
	if !auth.CanReadTodo(p, facts) {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	users, ok := h.collaboratorResponses(c, todo)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListUserTodoCollaborators lists collaborators under a user+todo path.
// A mismatch between the path user and the todo's owner is reported as
// NotFound so the todo's existence is not leaked.
func (h *Controller) ListUserTodoCollaborators(c *gin.Context) {
	ctx := c.Request.Context()
	p, ok := principal(c)
	if !ok {
		return
	}
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	todoID, ok := pathID(c, "todo_id")
	if !ok {
		return
	}
	todo, facts, ok := h.loadTodoFacts(c, todoID)
	if !ok {
		return
	}
	if todo.OwnerID != userID {
		logger.Warn(ctx, "Owner mismatch on scoped collaborator listing", "user_id", userID, "todo_id", todoID)
		fail(c, apperr.NotFoundf("User is not authorized"))
		return
	}
	if !auth.CanReadTodo(p, facts) {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	users, ok := h.collaboratorResponses(c, todo)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, users)
}

// AddCollaborator grants a user read access to a todo. Admin or owner.
// Re-adding an existing collaborator (or the owner itself) is a Conflict
// and leaves the set unchanged.
func (h *Controller) AddCollaborator(c *gin.Context) {
	ctx := c.Request.Context()
	p, ok := principal(c)
	if !ok {
		return
	}
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	user, err := h.stores.Users.ByID(ctx, userID)
	if err != nil {
		fail(c, err)
		return
	}
	todo, facts, ok := h.loadTodoFacts(c, todoID)
	if !ok {
		return
	}
	if !auth.CanManageCollaborators(p, facts) {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	if user.ID == todo.OwnerID || todo.HasCollaborator(user.ID) {
		fail(c, apperr.Conflictf("User %d is already a collaborator on todo %d", user.ID, todo.ID))
		return
	}
	if err := h.stores.Todos.AddCollaborator(ctx, todo.ID, user.ID); err != nil {
		fail(c, err)
		return
	}
	logger.Info(ctx, "Collaborator added", "todo_id", todo.ID, "user_id", user.ID)
	h.publish(c, models.ActionCreate, models.EntityCollaborator, todo.ID, p.ID)
	c.Status(http.StatusCreated)
}

// RemoveCollaborator revokes a user's collaborator membership. Admin or
// owner. Removing a non-member is a no-op success.
func (h *Controller) RemoveCollaborator(c *gin.Context) {
	ctx := c.Request.Context()
	p, ok := principal(c)
	if !ok {
		return
	}
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	todo, facts, ok := h.loadTodoFacts(c, todoID)
	if !ok {
		return
	}
	if !auth.CanManageCollaborators(p, facts) {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	if err := h.stores.Todos.RemoveCollaborator(ctx, todo.ID, userID); err != nil {
		fail(c, err)
		return
	}
	h.publish(c, models.ActionDelete, models.EntityCollaborator, todo.ID, p.ID)
	c.Status(http.StatusNoContent)
}
