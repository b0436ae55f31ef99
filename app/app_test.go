package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	konfig "github.com/0xalexb/hjarta-konfig"
	"github.com/0xalexb/hjarta-konfig/app"
	"github.com/0xalexb/hjarta-konfig/logging"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

type serverConfig struct {
	Host string `json:"host" toml:"host" yaml:"host"`
	Port int    `json:"port" toml:"port" yaml:"port"`
}

func serverSection(target *serverConfig) func() *konfig.StructSection[serverConfig] {
	return func() *konfig.StructSection[serverConfig] {
		return konfig.NewSection("server", target)
	}
}

func TestNewApp_CreatesAppWithDefaultLogLevel(t *testing.T) {
	t.Parallel()

	application := app.NewApp()
	require.NotNil(t, application)
	require.NoError(t, application.Err())
}

func TestNewApp_WithModules(t *testing.T) {
	t.Parallel()

	var invoked bool

	module := fx.Module("test",
		fx.Invoke(func() {
			invoked = true
		}),
	)

	application := app.NewApp(app.WithModules(module))
	require.NotNil(t, application)

	err := application.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Stop() })
	require.True(t, invoked)
}

func TestNewApp_LoggerConfigIsSupplied(t *testing.T) {
	t.Parallel()

	var capturedConfig logging.LoggerConfig

	module := fx.Module("test",
		fx.Invoke(func(config logging.LoggerConfig) {
			capturedConfig = config
		}),
	)

	application := app.NewApp(
		app.WithLogLevel("warn"),
		app.WithLogFormat("text"),
		app.WithModules(module),
	)

	err := application.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Stop() })
	require.Equal(t, "warn", capturedConfig.Level)
	require.Equal(t, "text", capturedConfig.Format)
}

func TestNewApp_LoadsSectionsOnStart(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configPath, []byte("server:\n  host: example.com\n  port: 9090\n"), 0o600)
	require.NoError(t, err)

	server := &serverConfig{Host: "localhost", Port: 8080}

	var manager *konfig.Manager

	application := app.NewApp(
		app.WithLogLevel("error"),
		app.WithKonfig(konfig.WithPath(configPath), konfig.WithCallbacks(true)),
		app.WithSections(serverSection(server)),
		app.WithModules(fx.Invoke(func(m *konfig.Manager) { manager = m })),
	)

	err = application.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Stop() })

	require.NotNil(t, manager)
	require.Equal(t, []string{"server"}, manager.Sections())
	require.Equal(t, serverConfig{Host: "example.com", Port: 9090}, *server)
}

func TestNewApp_InvalidKonfigOptions(t *testing.T) {
	t.Parallel()

	application := app.NewApp(
		app.WithLogLevel("error"),
		app.WithKonfig(konfig.WithPath("config.ini")),
	)

	require.Error(t, application.Err())
	require.Error(t, application.Start())
}

func TestApp_StopSavesWithAutoSave(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.json")
	server := &serverConfig{Host: "localhost", Port: 8080}

	application := app.NewApp(
		app.WithLogLevel("error"),
		app.WithKonfig(konfig.WithPath(configPath), konfig.WithAutoSave(true)),
		app.WithSections(serverSection(server)),
	)

	err := application.Start()
	require.NoError(t, err)

	server.Port = 9443

	err = application.Stop()
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.JSONEq(t, `{"server": {"host": "localhost", "port": 9443}}`, string(data))
}

func TestApp_Stop(t *testing.T) {
	t.Parallel()

	var stopCalled bool

	module := fx.Module("test",
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{
				OnStop: func(_ context.Context) error {
					stopCalled = true

					return nil
				},
			})
		}),
	)

	application := app.NewApp(app.WithModules(module))
	require.NotNil(t, application)

	err := application.Start()
	require.NoError(t, err)

	err = application.Stop()
	require.NoError(t, err)
	require.True(t, stopCalled, "OnStop hook should be called")
}

func TestApp_NilApp(t *testing.T) {
	t.Parallel()

	var application *app.App

	require.Error(t, application.Start())
	require.Error(t, application.Stop())
	require.Error(t, application.Err())
	require.NotPanics(t, func() {
		application.Run()
	})
}

func TestApp_RunSavesOnShutdown(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.toml")
	server := &serverConfig{Host: "localhost", Port: 8080}

	module := fx.Module("test",
		fx.Invoke(func(shutdowner fx.Shutdowner) {
			go func() {
				_ = shutdowner.Shutdown()
			}()
		}),
	)

	application := app.NewApp(
		app.WithLogLevel("error"),
		app.WithKonfig(konfig.WithPath(configPath), konfig.WithAutoSave(true)),
		app.WithSections(serverSection(server)),
		app.WithModules(module),
	)

	require.NotPanics(t, func() {
		application.Run()
	})

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "[server]")
	require.Contains(t, string(data), "port = 8080")
}
