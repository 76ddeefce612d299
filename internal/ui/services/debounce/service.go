package debounce

import (
	"sync"
	"time"

	"kwscout/internal/eventbus"
)

// Service coalesces a stream of raw input values into committed queries.
// Every Input resets the single pending timer; when the quiet interval
// elapses uninterrupted, the latest value is published as a
// QueryCommittedEvent. Empty values are committed too, so downstream can
// clear results.
type Service struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
	gen      uint64
	stopped  bool
	bus      eventbus.EventBus
}

// NewService creates a debouncer publishing on the given bus
func NewService(bus eventbus.EventBus, interval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Service{
		interval: interval,
		bus:      bus,
	}
}

// Input records a new raw value, cancelling any pending commit
func (s *Service) Input(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	if s.timer != nil {
		s.timer.Stop()
	}

	// The generation guards against a timer that had already fired while we
	// held Stop's return value; its emit must not race a newer one.
	s.gen++
	gen := s.gen
	s.timer = time.AfterFunc(s.interval, func() {
		s.emit(gen, value)
	})
}

// Cancel drops any pending commit without emitting
func (s *Service) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Stop cancels any pending timer and prevents all further emission. Used on
// teardown so nothing is published after disposal.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Service) emit(gen uint64, value string) {
	s.mu.Lock()
	if s.stopped || gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.mu.Unlock()

	s.bus.Publish(eventbus.QueryCommittedEvent{Query: value})
}
