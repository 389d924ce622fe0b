package session

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/regstore/internal/register"
)

// DefaultSaveDelay is how long a Saver waits for more requests before writing.
const DefaultSaveDelay = 250 * time.Millisecond

// Writer persists a snapshot.
type Writer interface {
	Save(snap register.Snapshot) error
}

// Source produces the snapshot to persist.
type Source interface {
	Snapshot() register.Snapshot
}

// Saver coalesces save requests and writes the latest snapshot once the
// requests stop arriving for the configured delay. It implements
// register.Persister.
type Saver struct {
	writer Writer
	delay  time.Duration
	logger *zap.Logger

	mu     sync.Mutex
	source Source

	requests  chan struct{}
	flushCh   chan chan error
	closeCh   chan struct{}
	closeOnce sync.Once
	done      chan struct{}
	closeErr  error
}

// SaverOption configures a Saver.
type SaverOption func(*Saver)

// WithDelay sets the debounce delay. Non-positive values use DefaultSaveDelay.
func WithDelay(d time.Duration) SaverOption {
	return func(s *Saver) {
		if d > 0 {
			s.delay = d
		}
	}
}

// WithLogger sets the logger for save failures.
func WithLogger(l *zap.Logger) SaverOption {
	return func(s *Saver) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSaver starts a saver writing through w.
// Call SetSource before the first save and Close when done.
func NewSaver(w Writer, opts ...SaverOption) *Saver {
	s := &Saver{
		writer:   w,
		delay:    DefaultSaveDelay,
		logger:   zap.NewNop(),
		requests: make(chan struct{}, 1),
		flushCh:  make(chan chan error),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.loop()
	return s
}

// SetSource sets where snapshots are taken from.
func (s *Saver) SetSource(src Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = src
}

// RequestSave schedules a save. It never blocks.
func (s *Saver) RequestSave() {
	select {
	case s.requests <- struct{}{}:
	default:
		// A request is already queued.
	}
}

// Flush writes any pending changes immediately.
func (s *Saver) Flush() error {
	reply := make(chan error, 1)
	select {
	case s.flushCh <- reply:
		return <-reply
	case <-s.done:
		return ErrSaverClosed
	}
}

// Close writes any pending changes and stops the saver.
func (s *Saver) Close() error {
	s.closeOnce.Do(func() {
		close(s.closeCh)
	})
	<-s.done
	return s.closeErr
}

func (s *Saver) loop() {
	defer close(s.done)

	var (
		timer  *time.Timer
		timerC <-chan time.Time
		dirty  bool
	)
	stop := func() {
		if timer != nil {
			timer.Stop()
		}
		timerC = nil
	}

	for {
		select {
		case <-s.requests:
			dirty = true
			if timer == nil {
				timer = time.NewTimer(s.delay)
			} else {
				timer.Reset(s.delay)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			if err := s.save(); err != nil {
				s.logger.Warn("session save failed", zap.Error(err))
				continue
			}
			dirty = false

		case reply := <-s.flushCh:
			stop()
			s.drainRequest(&dirty)
			var err error
			if dirty {
				if err = s.save(); err == nil {
					dirty = false
				}
			}
			reply <- err

		case <-s.closeCh:
			stop()
			s.drainRequest(&dirty)
			if dirty {
				s.closeErr = s.save()
			}
			return
		}
	}
}

// drainRequest folds a queued request into dirty.
func (s *Saver) drainRequest(dirty *bool) {
	select {
	case <-s.requests:
		*dirty = true
	default:
	}
}

func (s *Saver) save() error {
	s.mu.Lock()
	src := s.source
	s.mu.Unlock()

	if src == nil {
		return ErrNoSource
	}
	return s.writer.Save(src.Snapshot())
}

var _ register.Persister = (*Saver)(nil)
