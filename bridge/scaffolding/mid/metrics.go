package mid

import (
	"context"
	"net/http"

	"github.com/jrazmi/todolist/bridge/scaffolding/metrics"
	"github.com/jrazmi/todolist/infrastructure/web"
)

// Metrics updates program counters. Panics must run inside it so that a
// recovered panic is counted as an error.
func Metrics() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			ctx = metrics.Set(ctx)

			resp := next(ctx, r)

			n := metrics.AddRequests(ctx)
			if n%100 == 0 {
				metrics.AddGoroutines(ctx)
			}

			if isError(resp) != nil {
				metrics.AddErrors(ctx)
			}

			return resp
		}
	}
}
