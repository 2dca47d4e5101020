package config

import (
	"context"

	"github.com/jrazmi/todolist/core/repositories/tasksrepo"
	"github.com/jrazmi/todolist/sdk/logger"
	"github.com/jrazmi/todolist/sdk/telemetry"
)

// site wide globals.
const (
	ApiRoute = "api"
)

// Store backends.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// App is the environment driven part of the todolist configuration.
type App struct {
	Store       string   `env:"STORE" default:"postgres"`
	CORSOrigins []string `env:"CORS_ORIGINS" default:"*" separator:","`
}

// Repositories represents the repositories this instance of todolist serves.
type Repositories struct {
	Task *tasksrepo.Repository
}

// StatusCheckFunc reports whether the backing store can serve requests.
type StatusCheckFunc func(ctx context.Context) error

// Todolist is the overall configuration for the todolist application.
type Todolist struct {
	Build  string
	App    App
	Logger *logger.Logger

	Repositories Repositories
	Telemetry    telemetry.Telemetry
	StatusCheck  StatusCheckFunc
}
