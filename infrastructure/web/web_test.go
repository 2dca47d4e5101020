package web_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jrazmi/todolist/infrastructure/web"
	"github.com/jrazmi/todolist/sdk/telemetry"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
}

type upperPayload struct {
	Name string
}

func (u *upperPayload) Decode(data []byte) error {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	u.Name = strings.ToUpper(p.Name)
	return nil
}

// bareError is an Encoder that is an error but reports no status.
type bareError struct{}

func (bareError) Error() string { return "boom" }

func (bareError) Encode() ([]byte, string, error) {
	return []byte(`{"error":"boom"}`), "application/json", nil
}

type validatedPayload struct {
	Name string `json:"name"`
}

func (v validatedPayload) Validate() error {
	if v.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func TestRespond_Statuses(t *testing.T) {
	tests := []struct {
		name       string
		resp       web.Encoder
		wantStatus int
		wantBody   string
	}{
		{name: "json", resp: web.NewJSONResponse(payload{Name: "a"}), wantStatus: http.StatusOK, wantBody: `{"name":"a"}`},
		{name: "nil", resp: nil, wantStatus: http.StatusNoContent},
		{name: "status only", resp: web.NewStatusResponse(http.StatusOK), wantStatus: http.StatusOK},
		{name: "bare error", resp: bareError{}, wantStatus: http.StatusInternalServerError, wantBody: `{"error":"boom"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			require.NoError(t, web.Respond(context.Background(), w, tt.resp))
			require.Equal(t, tt.wantStatus, w.Code)
			require.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestRespond_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := httptest.NewRecorder()
	require.Error(t, web.Respond(ctx, w, web.NewJSONResponse(payload{})))
}

func TestWebHandler_MiddlewareOrderAndGroups(t *testing.T) {
	var order []string
	track := func(name string) web.Middleware {
		return func(next web.HandlerFunc) web.HandlerFunc {
			return func(ctx context.Context, r *http.Request) web.Encoder {
				order = append(order, name)
				return next(ctx, r)
			}
		}
	}

	wh := web.NewWebHandler(
		web.WithTelemetry(telemetry.NewTelemetry()),
		web.WithGlobalMiddleware(track("global")),
		web.WithDefaultHeaders(map[string]string{"X-Service": "todolist"}),
	)
	api := wh.Group("/api/", track("group"))
	api.GET("/things/{id}", func(ctx context.Context, r *http.Request) web.Encoder {
		order = append(order, "handler")
		id, err := web.ParamInt64(r, "id")
		if err != nil {
			return web.NewStatusResponse(http.StatusBadRequest)
		}
		return web.NewJSONResponse(map[string]int64{"id": id})
	}, track("route"))

	w := httptest.NewRecorder()
	wh.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/things/42", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":42}`, w.Body.String())
	require.Equal(t, []string{"global", "group", "route", "handler"}, order)
	require.Equal(t, "todolist", w.Header().Get("X-Service"))
	require.NotEmpty(t, w.Header().Get("X-Trace-ID"))

	w = httptest.NewRecorder()
	wh.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/things/forty-two", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebHandler_WriterInContext(t *testing.T) {
	wh := web.NewWebHandler()
	wh.GET("/raw", func(ctx context.Context, r *http.Request) web.Encoder {
		w := web.GetWriter(ctx)
		w.WriteHeader(http.StatusAccepted)
		return web.NewNoResponse()
	})

	w := httptest.NewRecorder()
	wh.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/raw", nil))
	require.Equal(t, http.StatusAccepted, w.Code)
}

func TestDecode(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var p payload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"milk"}`))
		require.NoError(t, web.Decode(r, &p))
		require.Equal(t, "milk", p.Name)
	})

	t.Run("custom decoder", func(t *testing.T) {
		var p upperPayload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"milk"}`))
		require.NoError(t, web.Decode(r, &p))
		require.Equal(t, "MILK", p.Name)
	})

	t.Run("empty body", func(t *testing.T) {
		var p payload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		require.ErrorContains(t, web.Decode(r, &p), "empty")
	})

	t.Run("malformed", func(t *testing.T) {
		var p payload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		require.ErrorContains(t, web.Decode(r, &p), "json decode")
	})

	t.Run("validation", func(t *testing.T) {
		var p validatedPayload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		require.ErrorContains(t, web.Decode(r, &p), "name is required")
	})
}
