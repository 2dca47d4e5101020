package mid

import (
	"context"
	"errors"
	"net/http"
	"path"

	"github.com/jrazmi/todolist/bridge/scaffolding/errs"
	"github.com/jrazmi/todolist/infrastructure/web"
	"github.com/jrazmi/todolist/sdk/logger"
)

// Errors handles errors coming out of the call chain.
func Errors(log *logger.Logger) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			resp := next(ctx, r)
			err := isError(resp)
			if err == nil {
				return resp
			}

			var appErr *errs.Error
			if !errors.As(err, &appErr) {
				appErr = errs.Newf(errs.Internal, "Internal Server Error")
			}

			if appErr.Code.Equal(errs.NotFound) || appErr.Code.Equal(errs.InvalidArgument) {
				log.WarnContext(ctx, "request rejected",
					"err", err,
					"code", appErr.Code.String())
			} else {
				log.ErrorContext(ctx, "handled error during request",
					"err", err,
					"source_err_file", path.Base(appErr.FileName),
					"source_err_func", path.Base(appErr.FuncName))
			}

			// The cause of a server side error is logged above and never sent.
			if appErr.Code.Equal(errs.Internal) || appErr.Code.Equal(errs.InternalOnlyLog) {
				appErr = errs.Newf(errs.Internal, "Internal Server Error")
			}

			return appErr
		}
	}
}
