// Package tasksrepobridge contains HTTP route registration for Task
package tasksrepobridge

import (
	"github.com/jrazmi/todolist/bridge/scaffolding/mid"
	"github.com/jrazmi/todolist/core/repositories/tasksrepo"
	"github.com/jrazmi/todolist/infrastructure/web"
	"github.com/jrazmi/todolist/sdk/logger"
)

// Config holds configuration for the Task bridge
type Config struct {
	Log        *logger.Logger
	Repository *tasksrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Task
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/tasks", b.httpList, cfg.Middleware...)
	group.POST("/tasks", b.httpCreate, cfg.Middleware...)
	group.GET("/tasks/{id}", b.httpGetByID, cfg.Middleware...)
	group.PUT("/tasks/{id}", b.httpReplace, cfg.Middleware...)
	group.PATCH("/tasks/{id}", b.httpPatch, cfg.Middleware...)
	group.DELETE("/tasks/{id}", b.httpDelete, cfg.Middleware...)

	group.OPTIONS("/tasks", mid.Preflight)
	group.OPTIONS("/tasks/{id}", mid.Preflight)
}
