package environment_test

import (
	"testing"
	"time"

	"github.com/jrazmi/todolist/sdk/environment"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Port     string        `env:"PORT" default:":8080"`
	Store    string        `env:"STORE" default:"postgres"`
	MaxConns int           `env:"MAX_CONNS" default:"25"`
	Debug    bool          `env:"DEBUG" default:"false"`
	Timeout  time.Duration `env:"TIMEOUT" default:"5s"`
	Origins  []string      `env:"ORIGINS" default:"a, b" separator:","`
	Ignored  string
}

func TestParseEnvTags_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, environment.ParseEnvTags("ENVTEST", &cfg))

	require.Equal(t, ":8080", cfg.Port)
	require.Equal(t, "postgres", cfg.Store)
	require.Equal(t, 25, cfg.MaxConns)
	require.False(t, cfg.Debug)
	require.Equal(t, 5*time.Second, cfg.Timeout)
	require.Equal(t, []string{"a", "b"}, cfg.Origins)
	require.Empty(t, cfg.Ignored)
}

func TestParseEnvTags_PrefixedOverrides(t *testing.T) {
	t.Setenv("ENVTEST_PORT", ":9000")
	t.Setenv("ENVTEST_STORE", "memory")
	t.Setenv("ENVTEST_DEBUG", "true")
	t.Setenv("ENVTEST_TIMEOUT", "250ms")
	t.Setenv("STORE", "ignored-without-prefix")

	var cfg testConfig
	require.NoError(t, environment.ParseEnvTags("ENVTEST", &cfg))

	require.Equal(t, ":9000", cfg.Port)
	require.Equal(t, "memory", cfg.Store)
	require.True(t, cfg.Debug)
	require.Equal(t, 250*time.Millisecond, cfg.Timeout)
}

func TestParseEnvTags_Required(t *testing.T) {
	var cfg struct {
		URL string `env:"URL" required:"true"`
	}
	err := environment.ParseEnvTags("ENVTEST_REQ", &cfg)
	require.ErrorContains(t, err, "ENVTEST_REQ_URL")
}

func TestParseEnvTags_BadValue(t *testing.T) {
	t.Setenv("ENVTEST_MAX_CONNS", "lots")

	var cfg testConfig
	require.Error(t, environment.ParseEnvTags("ENVTEST", &cfg))
}

func TestParseEnvTags_NotAPointer(t *testing.T) {
	require.Error(t, environment.ParseEnvTags("", testConfig{}))
}

func TestGetNamespaceEnvKey(t *testing.T) {
	require.Equal(t, "APP_PORT", environment.GetNamespaceEnvKey("APP", "PORT"))
	require.Equal(t, "PORT", environment.GetNamespaceEnvKey("", "PORT"))
}
