package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dshills/regstore/internal/buffer"
	"github.com/dshills/regstore/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testOptions(t *testing.T) Options {
	t.Helper()
	dir := t.TempDir()
	return Options{
		ConfigPath:      filepath.Join(dir, "config.toml"),
		SessionPath:     filepath.Join(dir, "session.yaml"),
		MemoryClipboard: true,
		Env:             map[string]string{},
		Logger:          zap.NewNop(),
	}
}

func newTestApp(t *testing.T, opts Options) *Application {
	t.Helper()
	app, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Shutdown() })
	return app
}

func TestSessionSurvivesRestart(t *testing.T) {
	opts := testOptions(t)

	first := newTestApp(t, opts)
	require.NoError(t, first.Registers().Set("a", []string{"alpha"}, false))
	require.NoError(t, first.Registers().Set("b", []string{"beta\n"}, true))
	require.NoError(t, first.Shutdown())

	_, err := os.Stat(opts.SessionPath)
	require.NoError(t, err)

	second := newTestApp(t, opts)
	view := buffer.NewView("")

	got, err := second.Registers().Get(view, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha"}, got)

	linewise, err := second.Registers().IsLinewise("b")
	require.NoError(t, err)
	assert.True(t, linewise)

	got, err = second.Registers().Get(view, `"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"beta\n"}, got, "unnamed register mirrors the last write")
}

func TestFlushWritesSession(t *testing.T) {
	opts := testOptions(t)
	app := newTestApp(t, opts)

	require.NoError(t, app.Registers().Set("c", []string{"x"}, false))
	require.NoError(t, app.Flush())

	data, err := os.ReadFile(opts.SessionPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "x")
	assert.Equal(t, opts.SessionPath, app.SessionPath())
}

func TestEvaluateFeedsUnnamedRead(t *testing.T) {
	app := newTestApp(t, testOptions(t))
	view := buffer.NewView("")

	values, err := app.Evaluate(context.Background(), `"ex" .. "pr"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"expr"}, values)

	got, err := app.Registers().Get(view, `"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"expr"}, got)

	got, err = app.Registers().Get(view, `"`)
	require.NoError(t, err)
	assert.NotEqual(t, []string{"expr"}, got, "expression is consumed by the first read")
}

func TestSessionPathFromSettings(t *testing.T) {
	opts := testOptions(t)
	want := filepath.Join(t.TempDir(), "from-env.yaml")
	opts.SessionPath = ""
	opts.Env = map[string]string{"REGSTORE_SESSION": want}

	app := newTestApp(t, opts)
	assert.Equal(t, want, app.SessionPath())
}

func TestUnknownClipboardBackend(t *testing.T) {
	opts := testOptions(t)
	opts.MemoryClipboard = false
	opts.Env = map[string]string{"REGSTORE_CLIPBOARD": "carrier-pigeon"}

	_, err := New(opts)
	var ie *InitError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "clipboard", ie.Component)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestMalformedSession(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, os.WriteFile(opts.SessionPath, []byte("registers: [\n"), 0o644))

	_, err := New(opts)
	var ie *InitError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "session", ie.Component)
}

func TestInvalidLogLevel(t *testing.T) {
	opts := testOptions(t)
	opts.Logger = nil
	opts.LogLevel = "loud"

	_, err := New(opts)
	var ie *InitError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "logger", ie.Component)
}

func TestWatchConfigReloads(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	opts := testOptions(t)
	opts.Logger = zap.New(core)
	require.NoError(t, os.WriteFile(opts.ConfigPath, []byte("use_sys_clipboard = false\n"), 0o644))

	app := newTestApp(t, opts)
	require.NoError(t, app.WatchConfig(context.Background()))
	require.NoError(t, app.WatchConfig(context.Background()), "second watch is a no-op")

	require.NoError(t, os.WriteFile(opts.ConfigPath, []byte("use_sys_clipboard = true\n"), 0o644))

	require.Eventually(t, func() bool {
		return app.Settings().Bool(config.KeyUseSysClipboard)
	}, 2*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		return logs.FilterMessage("settings reloaded").Len() > 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestShutdownTwice(t *testing.T) {
	app, err := New(testOptions(t))
	require.NoError(t, err)

	require.NoError(t, app.Shutdown())
	require.NoError(t, app.Shutdown())
	assert.ErrorIs(t, app.WatchConfig(context.Background()), ErrClosed)
}
