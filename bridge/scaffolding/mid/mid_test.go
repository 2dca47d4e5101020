package mid_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrazmi/todolist/bridge/scaffolding/errs"
	"github.com/jrazmi/todolist/bridge/scaffolding/mid"
	"github.com/jrazmi/todolist/infrastructure/web"
	"github.com/jrazmi/todolist/sdk/logger"
	"github.com/jrazmi/todolist/sdk/telemetry"
	"github.com/stretchr/testify/require"
)

func newHandler(buf *bytes.Buffer) *web.WebHandler {
	tel := telemetry.NewTelemetry()
	log := logger.NewDefault(
		logger.WithOutput(buf),
		logger.WithFormat("json"),
		logger.WithTraceID(tel.GetTraceID),
	)

	return web.NewWebHandler(
		web.WithTelemetry(tel),
		web.WithGlobalMiddleware(
			mid.CORS(),
			mid.Logger(log),
			mid.Errors(log),
			mid.Metrics(),
			mid.Panics(),
		),
	)
}

func serve(wh *web.WebHandler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	wh.ServeHTTP(w, req)
	return w
}

func TestErrors_UnknownErrorBecomesInternal(t *testing.T) {
	var buf bytes.Buffer
	wh := newHandler(&buf)
	wh.GET("/boom", func(ctx context.Context, r *http.Request) web.Encoder {
		return errs.New(errs.Internal, errors.New("db down"))
	})
	wh.GET("/hidden", func(ctx context.Context, r *http.Request) web.Encoder {
		return errs.Newf(errs.InternalOnlyLog, "secret detail")
	})

	w := serve(wh, http.MethodGet, "/boom", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"code":"internal","message":"Internal Server Error"}`, w.Body.String())
	require.Contains(t, buf.String(), "db down")

	w = serve(wh, http.MethodGet, "/hidden", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotContains(t, w.Body.String(), "secret detail")
	require.Contains(t, buf.String(), "secret detail")
}

func TestErrors_NotFoundIsEmpty(t *testing.T) {
	var buf bytes.Buffer
	wh := newHandler(&buf)
	wh.GET("/missing", func(ctx context.Context, r *http.Request) web.Encoder {
		return errs.Newf(errs.NotFound, "task not found")
	})

	w := serve(wh, http.MethodGet, "/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Empty(t, w.Body.String())
}

func TestPanics_Recovered(t *testing.T) {
	var buf bytes.Buffer
	wh := newHandler(&buf)
	wh.GET("/panic", func(ctx context.Context, r *http.Request) web.Encoder {
		panic("kaboom")
	})

	w := serve(wh, http.MethodGet, "/panic", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"code":"internal","message":"Internal Server Error"}`, w.Body.String())
	require.Contains(t, buf.String(), "kaboom")
}

func TestLogger_RequestLines(t *testing.T) {
	var buf bytes.Buffer
	wh := newHandler(&buf)
	wh.GET("/ok", func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewJSONResponse([]string{})
	})

	w := serve(wh, http.MethodGet, "/ok?x=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	out := buf.String()
	require.Contains(t, out, `"msg":"request started"`)
	require.Contains(t, out, `"msg":"request completed"`)
	require.Contains(t, out, `"path":"/ok?x=1"`)
	require.Contains(t, out, `"statuscode":200`)
	require.Contains(t, out, w.Header().Get("X-Trace-ID"))
}

func TestCORS_Preflight(t *testing.T) {
	var buf bytes.Buffer
	wh := newHandler(&buf)
	wh.OPTIONS("/tasks", mid.Preflight)

	w := serve(wh, http.MethodOptions, "/tasks", http.Header{"Origin": {"http://localhost:3000"}})
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestCORS_Origins(t *testing.T) {
	wh := web.NewWebHandler(web.WithGlobalMiddleware(mid.CORS("http://app.example.com")))
	wh.GET("/x", func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewStatusResponse(http.StatusOK)
	})

	w := serve(wh, http.MethodGet, "/x", http.Header{"Origin": {"http://app.example.com"}})
	require.Equal(t, "http://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(wh, http.MethodGet, "/x", http.Header{"Origin": {"http://evil.example.com"}})
	require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_CredentialsEchoOrigin(t *testing.T) {
	cfg := mid.DefaultCORSConfig()
	cfg.Credentials = true
	wh := web.NewWebHandler(web.WithGlobalMiddleware(mid.CORSWithConfig(cfg)))
	wh.GET("/x", func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewStatusResponse(http.StatusOK)
	})

	w := serve(wh, http.MethodGet, "/x", http.Header{"Origin": {"http://localhost:3000"}})
	require.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
