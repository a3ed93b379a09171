package routes

import (
	"todolist-api/internal/controller"
	"todolist-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Router assembles the HTTP surface. Registration and login are public;
// everything else under /api requires a bearer token.
func Router(ctrl *controller.Controller) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorTranslator())

	// Health for load balancers and K8s probes
	router.GET("/health", controller.Health)
	router.GET("/ready", controller.Ready)

	api := router.Group("/api")

	// Public: no auth
	api.POST("/auth/login", ctrl.Login)
	api.POST("/users/create", ctrl.CreateUser)

	// Protected: JWT required
	protected := api.Group("")
	protected.Use(middleware.Auth())
	{
		users := protected.Group("/users")
		users.GET("", ctrl.ListUsers)
		users.GET("/:id", ctrl.ReadUser)
		users.PATCH("/:id/update", ctrl.UpdateUser)
		users.DELETE("/:id/delete", ctrl.DeleteUser)
		users.GET("/:id/todos", ctrl.ListUserTodos)
		users.GET("/:id/todos/:todo_id/collaborators", ctrl.ListUserTodoCollaborators)
		users.GET("/:id/todos/:todo_id/tasks", ctrl.ListUserTodoTasks)

		todos := protected.Group("/todos")
		todos.POST("/create/users/:owner_id", ctrl.CreateTodo)
		todos.GET("", ctrl.ListTodos)
		todos.GET("/:id", ctrl.ReadTodo)
		todos.PATCH("/:id/update", ctrl.UpdateTodo)
		todos.DELETE("/:id/delete", ctrl.DeleteTodo)
		todos.GET("/:id/collaborators", ctrl.ListCollaborators)
		todos.GET("/:id/tasks", ctrl.ListTodoTasksNested)
		todos.POST("/:id/users/:user_id/add", ctrl.AddCollaborator)
		todos.DELETE("/:id/users/:user_id/remove", ctrl.RemoveCollaborator)

		tasks := protected.Group("/tasks")
		tasks.GET("", ctrl.ListTasks)
		tasks.POST("/:id/create", ctrl.CreateTask)
		tasks.GET("/:id", ctrl.ReadTask)
		tasks.DELETE("/:id/todos/:todo_id/delete", ctrl.DeleteTask)
		tasks.GET("/todos/:todo_id", ctrl.ListTodoTasks)

		protected.GET("/activity", ctrl.ListActivity)
	}

	return router
}
