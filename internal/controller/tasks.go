package controller

import (
	"fmt"
	"net/http"

	"todolist-api/internal/apperr"
	"todolist-api/internal/auth"
	"todolist-api/internal/dto"
	"todolist-api/internal/models"
	"todolist-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CreateTask creates a task under the todo named in the path. The state
// is always the initial NEW state regardless of payload; the priority
// must name a recognized enumeration value. Admin or owner of the todo.
func (h *Controller) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()
	p, ok := principal(c)
	if !ok {
		return
	}
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Wrap(apperr.Validation, err, "Invalid task payload"))
		return
	}
	priority, err := models.ParsePriority(req.Priority)
	if err != nil {
		fail(c, apperr.Wrap(apperr.Validation, err, "Invalid task payload"))
		return
	}
	_, facts, ok := h.loadTodoFacts(c, todoID)
	if !ok {
		return
	}
	if !auth.CanModifyTodo(p, facts) {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	state, err := h.stores.States.ByID(ctx, models.StateNewID)
	if err != nil {
		fail(c, err)
		return
	}
	task := &models.Task{
		Name:     req.Name,
		Priority: priority,
		TodoID:   todoID,
		StateID:  state.ID,
		State:    state.Name,
	}
	if err := h.stores.Tasks.Create(ctx, task); err != nil {
		fail(c, err)
		return
	}
	logger.Info(ctx, "Task created", "task_id", task.ID, "todo_id", todoID)
	h.publish(c, models.ActionCreate, models.EntityTask, task.ID, p.ID)
	c.Header("Location", fmt.Sprintf("/api/tasks/%d/%d", task.TodoID, task.ID))
	c.JSON(http.StatusCreated, dto.NewTaskResponse(task))
}

// ReadTask returns one task. Admin only.
func (h *Controller) ReadTask(c *gin.Context) {
	ctx := c.Request.Context()
	p, ok := principal(c)
	if !ok {
		return
	}
	if !p.IsAdmin() {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	task, err := h.stores.Tasks.ByID(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

// DeleteTask removes a single task. The task must belong to the todo in
// the path, and the principal must be an admin or the owner of that
// todo. Ownership is checked against the task's actual parent, not the
// path parameter alone.
func (h *Controller) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()
	p, ok := principal(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}
	todoID, ok := pathID(c, "todo_id")
	if !ok {
		return
	}
	task, err := h.stores.Tasks.ByID(ctx, taskID)
	if err != nil {
		fail(c, err)
		return
	}
	if task.TodoID != todoID {
		fail(c, apperr.NotFoundf("Task with id %d not found in todo %d", taskID, todoID))
		return
	}
	_, facts, ok := h.loadTodoFacts(c, task.TodoID)
	if !ok {
		return
	}
	if !auth.CanModifyTodo(p, facts) {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	if err := h.stores.Tasks.Delete(ctx, taskID); err != nil {
		fail(c, err)
		return
	}
	logger.Info(ctx, "Task deleted", "task_id", taskID, "todo_id", todoID)
	h.publish(c, models.ActionDelete, models.EntityTask, taskID, p.ID)
	c.Status(http.StatusNoContent)
}

// ListTasks returns every task. Admin only.
func (h *Controller) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()
	p, ok := principal(c)
	if !ok {
		return
	}
	if !p.IsAdmin() {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	tasks, err := h.stores.Tasks.All(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TaskResponses(tasks))
}

// ListTodoTasks returns the tasks of one todo. Requires read access to
// the todo.
func (h *Controller) ListTodoTasks(c *gin.Context) {
	h.listTasksForTodo(c, "todo_id")
}

// ListTodoTasksNested serves the same listing mounted under the todos
// group, where the todo id is the :id parameter.
func (h *Controller) ListTodoTasksNested(c *gin.Context) {
	h.listTasksForTodo(c, "id")
}

func (h *Controller) listTasksForTodo(c *gin.Context, param string) {
	ctx := c.Request.Context()
	p, ok := principal(c)
	if !ok {
		return
	}
	todoID, ok := pathID(c, param)
	if !ok {
		return
	}
	_, facts, ok := h.loadTodoFacts(c, todoID)
	if !ok {
		return
	}
	if !auth.CanReadTodo(p, facts) {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	tasks, err := h.stores.Tasks.ByTodo(ctx, todoID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TaskResponses(tasks))
}

// ListUserTodoTasks lists tasks under a user+todo path. As with the
// scoped collaborator listing, an owner mismatch reads as NotFound.
func (h *Controller) ListUserTodoTasks(c *gin.Context) {
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
		logger.Warn(ctx, "Owner mismatch on scoped task listing", "user_id", userID, "todo_id", todoID)
		fail(c, apperr.NotFoundf("User is not authorized"))
		return
	}
	if !auth.CanReadTodo(p, facts) {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	tasks, err := h.stores.Tasks.ByTodo(ctx, todoID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TaskResponses(tasks))
}
