// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tasklist/internal/delivery/http/middleware"
	"tasklist/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ListHandler    *handler.ListHandler
	TaskHandler    *handler.TaskHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	listHandler    *handler.ListHandler
	taskHandler    *handler.TaskHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		listHandler:    params.ListHandler,
		taskHandler:    params.TaskHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public routes: signup and both login flavours
	e.POST("/users", r.userHandler.Register)
	e.POST("/users/login", r.userHandler.Login)
	e.POST("/docslogin", r.userHandler.DocsLogin)

	// List and task routes all require a valid bearer token
	listGroup := e.Group("/lists")
	listGroup.Use(r.authMiddleware.Authenticate)
	{
		listGroup.GET("", r.listHandler.GetLists)
		listGroup.POST("", r.listHandler.CreateList)
		listGroup.DELETE("", r.listHandler.DeleteList)
		listGroup.GET("/:list_id", r.listHandler.GetList)

		listGroup.GET("/:list_id/tasks", r.taskHandler.GetTasks)
		listGroup.POST("/:list_id/tasks", r.taskHandler.CreateTask)
		listGroup.PATCH("/:list_id/tasks/:task_id", r.taskHandler.UpdateTask)
		listGroup.DELETE("/:list_id/tasks", r.taskHandler.DeleteTask)
	}
}
