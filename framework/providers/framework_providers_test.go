package providers_test

import (
	"bytes"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/taller-dashboard/framework/config"
	"github.com/km-arc/taller-dashboard/framework/container"
	"github.com/km-arc/taller-dashboard/framework/providers"
	"github.com/km-arc/taller-dashboard/framework/routing"
)

func testConfig(env string, debug bool) *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Taller", Env: env, Debug: debug, Port: "0"},
		API: config.APIConfig{BaseURL: "http://localhost:3000", Timeout: time.Second},
	}
}

func TestNewLogger_TextWithDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := providers.NewLogger(testConfig("local", true), &buf)

	logger.Debug("hola")
	assert.Contains(t, buf.String(), "msg=hola")
	assert.Contains(t, buf.String(), "app=Taller")
}

func TestNewLogger_JSONInProduction(t *testing.T) {
	var buf bytes.Buffer
	logger := providers.NewLogger(testConfig("production", false), &buf)

	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.Info("visible")
	assert.Contains(t, buf.String(), `"msg":"visible"`)
	assert.Contains(t, buf.String(), `"env":"production"`)
}

func TestCoreProviders_ResolveChain(t *testing.T) {
	var buf bytes.Buffer
	c := container.New()
	reg := container.NewProviderRegistry(c)
	require.NoError(t, reg.Register(&providers.ConfigServiceProvider{Config: testConfig("local", false)}))
	require.NoError(t, reg.Register(&providers.LogServiceProvider{Writer: &buf}))
	require.NoError(t, reg.Register(&providers.RoutingServiceProvider{}))
	require.NoError(t, reg.Boot())

	router, err := container.Resolve[*routing.Router](c, providers.RouterKey)
	require.NoError(t, err)
	assert.NotNil(t, router)

	logger, err := container.Resolve[*slog.Logger](c, providers.LoggerKey)
	require.NoError(t, err)
	logger.Info("listo")
	assert.Contains(t, buf.String(), "msg=listo")
}

func TestConfigServiceProvider_LoadsEnvFiles(t *testing.T) {
	for _, k := range []string{"APP_NAME", "APP_ENV", "APP_DEBUG", "APP_PORT", "API_BASE_URL", "API_TOKEN", "API_TIMEOUT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Setenv("APP_NAME", "Taller Norte")

	c := container.New()
	(&providers.ConfigServiceProvider{EnvFiles: []string{"testdata/missing.env"}}).Register(c)

	cfg, err := container.Resolve[*config.Config](c, providers.ConfigKey)
	require.NoError(t, err)
	assert.Equal(t, "Taller Norte", cfg.App.Name)
}

func TestConfigServiceProvider_InvalidConfig(t *testing.T) {
	t.Setenv("APP_PORT", "http")

	c := container.New()
	(&providers.ConfigServiceProvider{EnvFiles: []string{"testdata/missing.env"}}).Register(c)
	(&providers.LogServiceProvider{}).Register(c)

	_, err := container.Resolve[*slog.Logger](c, providers.LoggerKey)
	assert.Error(t, err, "logger depends on a config that fails validation")
}
