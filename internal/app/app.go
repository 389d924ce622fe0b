// Package app wires the register manager to its session file, settings,
// clipboard and expression evaluator, and owns their lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/dshills/regstore/internal/clipboard"
	"github.com/dshills/regstore/internal/config"
	"github.com/dshills/regstore/internal/expr"
	"github.com/dshills/regstore/internal/register"
	"github.com/dshills/regstore/internal/session"
)

const (
	appDir             = "regstore"
	defaultConfigFile  = "config.toml"
	defaultSessionFile = "session.yaml"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the TOML settings file. Empty uses the default location.
	ConfigPath string

	// SessionPath overrides the session file from settings.
	SessionPath string

	// LogLevel overrides the configured log level.
	LogLevel string

	// MemoryClipboard replaces the system clipboard with an in-process one.
	MemoryClipboard bool

	// Env replaces the process environment when non-nil.
	Env map[string]string

	// Logger replaces the logger built from LogLevel.
	Logger *zap.Logger
}

// Application owns the long-lived components behind the CLI.
type Application struct {
	logger    *zap.Logger
	settings  *config.Settings
	session   *session.File
	saver     *session.Saver
	clipboard register.Clipboard
	history   *clipboard.History
	registers *register.Manager
	eval      *expr.Evaluator

	mu      sync.Mutex
	watcher *config.Watcher
	closed  bool
}

// New creates an Application and restores the saved session.
func New(opts Options) (*Application, error) {
	app := &Application{}
	if err := app.bootstrap(opts); err != nil {
		app.close()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap(opts Options) error {
	var err error

	// 1. Settings
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = defaultPath(defaultConfigFile)
	}
	var configOpts []config.Option
	if opts.Env != nil {
		configOpts = append(configOpts, config.WithEnv(opts.Env))
	}
	app.settings, err = config.Load(configPath, configOpts...)
	if err != nil {
		return &InitError{Component: "settings", Err: err}
	}

	// 2. Logger
	app.logger = opts.Logger
	if app.logger == nil {
		level := opts.LogLevel
		if level == "" {
			level = app.settings.String(config.KeyLogLevel, DefaultLogLevel)
		}
		app.logger, err = newLogger(level)
		if err != nil {
			return &InitError{Component: "logger", Err: err}
		}
	}
	app.settings.SetLogger(app.logger.Named("config"))

	// 3. Session
	sessionPath := opts.SessionPath
	if sessionPath == "" {
		sessionPath = app.settings.String(config.KeySessionPath, "")
	}
	if sessionPath == "" {
		sessionPath = defaultPath(defaultSessionFile)
	}
	app.session = session.NewFile(sessionPath)
	snap, err := app.session.Load()
	if err != nil {
		return &InitError{Component: "session", Err: err}
	}
	app.saver = session.NewSaver(app.session,
		session.WithDelay(app.settings.Duration(config.KeySaveDelay, session.DefaultSaveDelay)),
		session.WithLogger(app.logger.Named("session")),
	)

	// 4. Clipboard
	app.clipboard, err = app.newClipboard(opts.MemoryClipboard)
	if err != nil {
		return &InitError{Component: "clipboard", Err: err}
	}
	app.history = clipboard.NewHistory(app.settings.Int(config.KeyHistorySize, clipboard.DefaultHistorySize))

	// 5. Registers
	app.registers = register.NewManager(register.NewStoreFromSnapshot(snap),
		register.WithClipboard(app.clipboard),
		register.WithHistory(app.history),
		register.WithSettings(app.settings),
		register.WithPersister(app.saver),
		register.WithLogger(app.logger.Named("register")),
	)
	app.saver.SetSource(app.registers)

	// 6. Expression evaluator
	app.eval = expr.NewEvaluator(expr.WithLogger(app.logger.Named("expr")))

	app.logger.Debug("application initialized",
		zap.String("session", sessionPath),
		zap.String("session_id", app.session.ID()),
		zap.String("config", configPath),
	)
	return nil
}

func (app *Application) newClipboard(memory bool) (register.Clipboard, error) {
	backend := app.settings.String(config.KeyClipboard, "system")
	if memory {
		backend = "memory"
	}

	switch backend {
	case "memory":
		return clipboard.NewMemory(""), nil
	case "system":
		sys := clipboard.NewSystem()
		if !sys.Supported() {
			app.logger.Warn("system clipboard unavailable; using in-process clipboard")
			return clipboard.NewMemory(""), nil
		}
		return sys, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

func defaultPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, appDir, name)
}

// Registers returns the register manager.
func (app *Application) Registers() *register.Manager {
	return app.registers
}

// Settings returns the loaded settings.
func (app *Application) Settings() *config.Settings {
	return app.settings
}

// History returns the clipboard history.
func (app *Application) History() *clipboard.History {
	return app.history
}

// Logger returns the application logger.
func (app *Application) Logger() *zap.Logger {
	return app.logger
}

// SessionPath returns the session file path.
func (app *Application) SessionPath() string {
	return app.session.Path()
}

// Evaluate runs src and stores the result in the expression register,
// to be consumed by the next unnamed read.
func (app *Application) Evaluate(ctx context.Context, src string) ([]string, error) {
	values, err := app.eval.Eval(ctx, src)
	if err != nil {
		return nil, err
	}
	app.registers.SetExpression(values)
	return values, nil
}

// WatchConfig reloads settings when the config file changes, until ctx
// is done or Shutdown.
func (app *Application) WatchConfig(ctx context.Context) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.closed {
		return ErrClosed
	}
	if app.watcher != nil {
		return nil
	}

	w, err := app.settings.Watch(ctx, func() {
		app.logger.Info("settings reloaded",
			zap.Bool(config.KeyUseSysClipboard, app.settings.Bool(config.KeyUseSysClipboard)))
	})
	if err != nil {
		return err
	}
	app.watcher = w
	return nil
}

// Flush writes pending register changes to the session file.
func (app *Application) Flush() error {
	return app.saver.Flush()
}

// Shutdown stops background work and saves the session.
// It is safe to call more than once.
func (app *Application) Shutdown() error {
	app.mu.Lock()
	if app.closed {
		app.mu.Unlock()
		return nil
	}
	app.mu.Unlock()

	err := app.close()
	_ = app.logger.Sync()
	return err
}

// close releases components in reverse initialization order.
func (app *Application) close() error {
	app.mu.Lock()
	defer app.mu.Unlock()

	app.closed = true

	var errs []error
	if app.watcher != nil {
		errs = append(errs, app.watcher.Close())
		app.watcher = nil
	}
	if app.eval != nil {
		app.eval.Close()
	}
	if app.saver != nil {
		errs = append(errs, app.saver.Close())
	}
	return errors.Join(errs...)
}
