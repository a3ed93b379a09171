package controller

import (
	"fmt"
	"net/http"

	"todolist-api/internal/apperr"
	"todolist-api/internal/auth"
	"todolist-api/internal/config"
	"todolist-api/internal/dto"
	"todolist-api/internal/models"
	"todolist-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// CreateUser registers a new account. The role is always forced to USER
// regardless of payload; the password is stored bcrypt-hashed.
func (h *Controller) CreateUser(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Wrap(apperr.Validation, err, "Invalid user payload"))
		return
	}

	role, err := h.stores.Roles.ByID(ctx, models.RoleUserID)
	if err != nil {
		fail(c, err)
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), config.Get().BcryptCost)
	if err != nil {
		fail(c, err)
		return
	}
	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hash),
		RoleID:    role.ID,
		RoleName:  role.Name,
	}
	if err := h.stores.Users.Create(ctx, user); err != nil {
		fail(c, err)
		return
	}
	logger.Info(ctx, "User created", "user_id", user.ID)
	h.publish(c, models.ActionCreate, models.EntityUser, user.ID, user.ID)
	c.Header("Location", fmt.Sprintf("/api/users/%d", user.ID))
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// ReadUser returns one user. Admin or self.
func (h *Controller) ReadUser(c *gin.Context) {
	ctx := c.Request.Context()
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !auth.CanAccessUser(p, id) {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	user, err := h.stores.Users.ByID(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// UpdateUser overwrites name, email, and password wholesale. Admin, or
// the user acting on itself.
func (h *Controller) UpdateUser(c *gin.Context) {
	ctx := c.Request.Context()
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !auth.CanAccessUser(p, id) {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Wrap(apperr.Validation, err, "Invalid user payload"))
		return
	}
	user, err := h.stores.Users.ByID(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), config.Get().BcryptCost)
	if err != nil {
		fail(c, err)
		return
	}
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	user.Password = string(hash)
	if err := h.stores.Users.Update(ctx, user); err != nil {
		fail(c, err)
		return
	}
	h.publish(c, models.ActionUpdate, models.EntityUser, user.ID, p.ID)
	c.Header("Location", fmt.Sprintf("/api/users/%d", user.ID))
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// DeleteUser removes an account. Admin or self. Owned todos cascade.
func (h *Controller) DeleteUser(c *gin.Context) {
	ctx := c.Request.Context()
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !auth.CanAccessUser(p, id) {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	if err := h.stores.Users.Delete(ctx, id); err != nil {
		fail(c, err)
		return
	}
	logger.Info(ctx, "User deleted", "user_id", id)
	h.publish(c, models.ActionDelete, models.EntityUser, id, p.ID)
	c.Status(http.StatusNoContent)
}

// ListUsers returns every user. Admin only.
func (h *Controller) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()
	p, ok := principal(c)
	if !ok {
		return
	}
	if !p.IsAdmin() {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	users, err := h.stores.Users.All(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserResponses(users))
}

// ListUserTodos returns the todos a user owns. Admin or self.
func (h *Controller) ListUserTodos(c *gin.Context) {
	ctx := c.Request.Context()
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !auth.CanAccessUser(p, id) {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	if _, err := h.stores.Users.ByID(ctx, id); err != nil {
		fail(c, err)
		return
	}
	todos, err := h.stores.Todos.ByOwner(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDoResponses(todos))
}
