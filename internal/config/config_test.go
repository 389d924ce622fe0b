package config

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load("", WithEnv(nil))
	require.NoError(t, err)

	assert.False(t, s.Bool(KeyUseSysClipboard))
	assert.Equal(t, "info", s.String(KeyLogLevel, ""))
	assert.Equal(t, "system", s.String(KeyClipboard, ""))
	assert.Equal(t, 15, s.Int(KeyHistorySize, 0))
	assert.Equal(t, 250*time.Millisecond, s.Duration(KeySaveDelay, 0))
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.toml"), WithEnv(nil))
	require.NoError(t, err)
	assert.Equal(t, "info", s.String(KeyLogLevel, ""))
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regstore.toml")
	writeFile(t, path, `
use_sys_clipboard = true

[logging]
level = "debug"

[session]
save_delay = 500

[clipboard]
history_size = 3
`)

	s, err := Load(path, WithEnv(nil))
	require.NoError(t, err)

	assert.True(t, s.Bool(KeyUseSysClipboard))
	assert.Equal(t, "debug", s.String(KeyLogLevel, ""))
	assert.Equal(t, 500*time.Millisecond, s.Duration(KeySaveDelay, 0))
	assert.Equal(t, 3, s.Int(KeyHistorySize, 0))
	assert.Equal(t, "system", s.String(KeyClipboard, ""), "unset keys keep defaults")
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	writeFile(t, path, "use_sys_clipboard = = true")

	_, err := Load(path, WithEnv(nil))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, path, pe.Path)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regstore.toml")
	writeFile(t, path, "use_sys_clipboard = false\n[logging]\nlevel = \"warn\"\n")

	s, err := Load(path, WithEnv(map[string]string{
		"REGSTORE_USE_SYS_CLIPBOARD":      "yes",
		"REGSTORE_SAVE_DELAY":             "2s",
		"REGSTORE_CLIPBOARD_BACKEND":      "memory",
		"REGSTORE_CLIPBOARD_HISTORY_SIZE": "7",
		"REGSTORE_SESSION":                "/tmp/s.yaml",
		"OTHER_VARIABLE":                  "ignored",
	}))
	require.NoError(t, err)

	assert.True(t, s.Bool(KeyUseSysClipboard))
	assert.Equal(t, "warn", s.String(KeyLogLevel, ""))
	assert.Equal(t, 2*time.Second, s.Duration(KeySaveDelay, 0))
	assert.Equal(t, "memory", s.String(KeyClipboard, ""))
	assert.Equal(t, "/tmp/s.yaml", s.String(KeySessionPath, ""))
	assert.Equal(t, 7, s.Int(KeyHistorySize, 0))
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"", ""},
		{"true", true},
		{"OFF", false},
		{"42", int64(42)},
		{"1.5", 1.5},
		{"300ms", 300 * time.Millisecond},
		{"hello", "hello"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseValue(tt.input), "parseValue(%q)", tt.input)
	}
}

func TestEnvToPath(t *testing.T) {
	assert.Equal(t, "clipboard.history_size", envToPath("REGSTORE_CLIPBOARD_HISTORY_SIZE"))
	assert.Equal(t, "logging.level", envToPath("REGSTORE_LOGGING_LEVEL"))
	assert.Equal(t, "verbose", envToPath("REGSTORE_VERBOSE"))
}

func TestBoolCoercion(t *testing.T) {
	s, err := Load("", WithEnv(map[string]string{
		"REGSTORE_FLAGS_NUM":  "1",
		"REGSTORE_FLAGS_WORD": "maybe",
	}))
	require.NoError(t, err)

	assert.True(t, s.Bool("flags.num"))
	assert.False(t, s.Bool("flags.word"))
	assert.False(t, s.Bool("flags.missing"))
	assert.False(t, s.Bool("logging.level.deeper"))
}

func TestReloadKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regstore.toml")
	writeFile(t, path, "use_sys_clipboard = true\n")

	s, err := Load(path, WithEnv(nil))
	require.NoError(t, err)

	writeFile(t, path, "use_sys_clipboard = [")
	require.Error(t, s.Reload())
	assert.True(t, s.Bool(KeyUseSysClipboard))
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regstore.toml")
	writeFile(t, path, "use_sys_clipboard = false\n")

	s, err := Load(path, WithEnv(nil))
	require.NoError(t, err)

	var reloads atomic.Int32
	w, err := s.Watch(context.Background(), func() { reloads.Add(1) })
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, filepath.Join(dir, "unrelated.toml"), "use_sys_clipboard = true\n")
	writeFile(t, path, "use_sys_clipboard = true\n")

	require.Eventually(t, func() bool { return s.Bool(KeyUseSysClipboard) }, 2*time.Second, 10*time.Millisecond)
	assert.Positive(t, reloads.Load())

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestWatchStopsOnContextCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regstore.toml")
	writeFile(t, path, "")

	s, err := Load(path, WithEnv(nil))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	w, err := s.Watch(ctx, nil)
	require.NoError(t, err)

	cancel()
	require.NoError(t, w.Close())
}

func TestWatchWithoutPath(t *testing.T) {
	s, err := Load("", WithEnv(nil))
	require.NoError(t, err)

	_, err = s.Watch(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoPath)
}
