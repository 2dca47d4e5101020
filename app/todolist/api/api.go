// Package api binds the todolist routes to the web handler.
package api

import (
	"context"
	"net/http"

	"github.com/jrazmi/todolist/app/todolist/config"
	"github.com/jrazmi/todolist/bridge/repositories/tasksrepobridge"
	"github.com/jrazmi/todolist/bridge/scaffolding/errs"
	"github.com/jrazmi/todolist/infrastructure/web"
)

type readiness struct {
	Status string `json:"status"`
}

// AddHandlers registers every api route under /api.
func AddHandlers(wh *web.WebHandler, cfg config.Todolist) {
	group := wh.Group("/" + config.ApiRoute)

	group.GET("/readiness", readinessHandler(cfg.StatusCheck))

	tasksrepobridge.AddHttpRoutes(group, tasksrepobridge.Config{
		Log:        cfg.Logger,
		Repository: cfg.Repositories.Task,
	})
}

func readinessHandler(check config.StatusCheckFunc) web.HandlerFunc {
	return func(ctx context.Context, r *http.Request) web.Encoder {
		if check != nil {
			if err := check(ctx); err != nil {
				return errs.Newf(errs.InternalOnlyLog, "not ready: %s", err)
			}
		}

		return web.NewJSONResponse(readiness{Status: "ok"})
	}
}
