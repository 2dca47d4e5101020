package mid

import (
	"context"
	"net/http"
	"strings"

	"github.com/jrazmi/todolist/infrastructure/web"
)

// CORSConfig holds CORS configuration options
type CORSConfig struct {
	Origins     []string
	Methods     []string
	Headers     []string
	Credentials bool
	MaxAge      string
}

// DefaultCORSConfig returns a default CORS configuration
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		Origins:     []string{"*"},
		Methods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		Headers:     []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "X-Trace-ID"},
		Credentials: false,
		MaxAge:      "86400",
	}
}

// CORS creates CORS middleware with the given origins. No origins means any.
func CORS(origins ...string) web.Middleware {
	config := DefaultCORSConfig()
	if len(origins) > 0 {
		config.Origins = origins
	}
	return CORSWithConfig(config)
}

// CORSWithConfig creates CORS middleware with full configuration
func CORSWithConfig(config CORSConfig) web.Middleware {
	methods := strings.Join(config.Methods, ", ")
	headers := strings.Join(config.Headers, ", ")

	return func(handler web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			w := web.GetWriter(ctx)
			if w == nil {
				return handler(ctx, r)
			}

			reqOrigin := r.Header.Get("Origin")

			for _, origin := range config.Origins {
				if origin != "*" && origin != reqOrigin {
					continue
				}
				// A wildcard cannot be combined with credentials.
				if origin == "*" && config.Credentials && reqOrigin != "" {
					origin = reqOrigin
					w.Header().Add("Vary", "Origin")
				}
				w.Header().Set("Access-Control-Allow-Origin", origin)
				break
			}

			if config.Credentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
			if methods != "" {
				w.Header().Set("Access-Control-Allow-Methods", methods)
			}
			if headers != "" {
				w.Header().Set("Access-Control-Allow-Headers", headers)
			}
			if config.MaxAge != "" {
				w.Header().Set("Access-Control-Max-Age", config.MaxAge)
			}

			return handler(ctx, r)
		}
	}
}

// Preflight answers an OPTIONS request. The CORS middleware has already set
// the headers so the response carries no body.
func Preflight(ctx context.Context, r *http.Request) web.Encoder {
	return nil
}
