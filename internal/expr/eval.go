package expr

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single evaluation.
const DefaultTimeout = 2 * time.Second

// Evaluator runs expressions in a sandboxed Lua state.
// It is safe for concurrent use; evaluations are serialized.
type Evaluator struct {
	mu      sync.Mutex
	L       *lua.LState
	timeout time.Duration
	logger  *zap.Logger
	closed  bool
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithTimeout sets the per-evaluation timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(e *Evaluator) {
		e.timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.L = newState()
	return e
}

func newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}

// Eval evaluates src and returns its value as register fragments.
// src is tried as an expression first, then as a chunk whose first
// return value is used.
func (e *Evaluator) Eval(ctx context.Context, src string) ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrClosed
	}

	fn, err := e.L.LoadString("return " + src)
	if err != nil {
		fn, err = e.L.LoadString(src)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEval, err)
		}
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	result, err := e.call(ctx, fn)
	if err != nil {
		if ctx.Err() != nil {
			// The interrupted state may hold a half-unwound stack.
			e.L.Close()
			e.L = newState()
			e.logger.Warn("expression interrupted", zap.Error(ctx.Err()))
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, ErrTimeout
			}
			return nil, fmt.Errorf("%w: %v", ErrEval, ctx.Err())
		}
		return nil, fmt.Errorf("%w: %v", ErrEval, err)
	}

	return toFragments(result)
}

func (e *Evaluator) call(ctx context.Context, fn *lua.LFunction) (result lua.LValue, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()

	e.L.SetContext(ctx)
	defer e.L.RemoveContext()

	top := e.L.GetTop()
	e.L.Push(fn)
	if err := e.L.PCall(0, 1, nil); err != nil {
		e.L.SetTop(top)
		return nil, err
	}
	result = e.L.Get(-1)
	e.L.SetTop(top)
	return result, nil
}

// Close releases the Lua state.
func (e *Evaluator) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.L.Close()
}

func toFragments(v lua.LValue) ([]string, error) {
	if tbl, ok := v.(*lua.LTable); ok {
		n := tbl.Len()
		out := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			s, err := scalar(tbl.RawGetInt(i))
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out = append(out, s)
		}
		return out, nil
	}

	if v == lua.LNil {
		return []string{}, nil
	}

	s, err := scalar(v)
	if err != nil {
		return nil, err
	}
	return []string{s}, nil
}

func scalar(v lua.LValue) (string, error) {
	switch val := v.(type) {
	case lua.LString:
		return string(val), nil
	case lua.LNumber:
		return val.String(), nil
	case lua.LBool:
		if val {
			return "true", nil
		}
		return "false", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedResult, v.Type())
	}
}
