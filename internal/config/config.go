package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

// Setting keys.
const (
	KeyUseSysClipboard = "use_sys_clipboard"
	KeyLogLevel        = "logging.level"
	KeySessionPath     = "session.path"
	KeySaveDelay       = "session.save_delay"
	KeyClipboard       = "clipboard.backend"
	KeyHistorySize     = "clipboard.history_size"
)

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		KeyUseSysClipboard: false,
		"logging": map[string]any{
			"level": "info",
		},
		"session": map[string]any{
			"path":       "",
			"save_delay": "250ms",
		},
		"clipboard": map[string]any{
			"backend":      "system",
			"history_size": int64(15),
		},
	}
}

// Settings is a layered, reloadable configuration.
// All methods are safe for concurrent use.
type Settings struct {
	path    string
	lookup  LookupFunc
	environ func() []string
	logger  *zap.Logger

	mu     sync.RWMutex
	values map[string]any
}

// Option configures Settings.
type Option func(*Settings)

// WithEnv replaces the process environment, mainly for tests.
func WithEnv(env map[string]string) Option {
	return func(s *Settings) {
		s.lookup = func(k string) (string, bool) {
			v, ok := env[k]
			return v, ok
		}
		s.environ = func() []string {
			out := make([]string, 0, len(env))
			for k, v := range env {
				out = append(out, k+"="+v)
			}
			return out
		}
	}
}

// WithLogger sets the logger for reload diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// Load builds settings from defaults, the TOML file at path and the
// environment. An empty path skips the file layer.
func Load(path string, opts ...Option) (*Settings, error) {
	s := &Settings{
		path:    path,
		lookup:  osLookup,
		environ: os.Environ,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// SetLogger replaces the logger used for reload diagnostics.
func (s *Settings) SetLogger(l *zap.Logger) {
	if l == nil {
		return
	}
	s.mu.Lock()
	s.logger = l
	s.mu.Unlock()
}

func (s *Settings) log() *zap.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logger
}

// Path returns the configuration file path.
func (s *Settings) Path() string {
	return s.path
}

// Reload re-reads every layer. On error the previous values are kept.
func (s *Settings) Reload() error {
	values := Defaults()

	if s.path != "" {
		file, err := readTOML(s.path)
		if err != nil {
			return err
		}
		merge(values, file)
	}

	merge(values, loadEnv(s.lookup, s.environ()))

	s.mu.Lock()
	s.values = values
	s.mu.Unlock()
	return nil
}

func readTOML(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var config map[string]any
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return config, nil
}

// Get returns the raw value at key.
func (s *Settings) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return getByPath(s.values, key)
}

// Bool returns the boolean at key, false if unset or not a boolean.
func (s *Settings) Bool(key string) bool {
	v, _ := s.Get(key)
	switch b := v.(type) {
	case bool:
		return b
	case int64:
		return b != 0
	case string:
		parsed, err := strconv.ParseBool(b)
		return err == nil && parsed
	default:
		return false
	}
}

// String returns the string at key or def.
func (s *Settings) String(key, def string) string {
	if v, ok := s.Get(key); ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return def
}

// Int returns the integer at key or def.
func (s *Settings) Int(key string, def int) int {
	v, _ := s.Get(key)
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case float64:
		return int(n)
	default:
		return def
	}
}

// Duration returns the duration at key or def. Strings use
// time.ParseDuration syntax; integers are milliseconds.
func (s *Settings) Duration(key string, def time.Duration) time.Duration {
	v, _ := s.Get(key)
	switch d := v.(type) {
	case time.Duration:
		return d
	case string:
		if parsed, err := time.ParseDuration(d); err == nil {
			return parsed
		}
	case int64:
		return time.Duration(d) * time.Millisecond
	}
	return def
}
