// Package bus is an in-process signal bus. Components that do not know
// about each other exchange fire-and-forget notifications through it.
package bus

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"reportmap/internal/ports"
)

// DefaultBuffer is the per-subscriber queue length
const DefaultBuffer = 8

// Bus implements ports.SignalBus
type Bus struct {
	mu     sync.Mutex
	subs   map[string]*subscription
	buffer int
	logger *slog.Logger
}

var _ ports.SignalBus = (*Bus)(nil)

// New creates a bus. A nil logger discards drop notices.
func New(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bus{
		subs:   make(map[string]*subscription),
		buffer: DefaultBuffer,
		logger: logger,
	}
}

// Publish delivers sig to every subscriber registered for its name.
// A subscriber whose queue is full misses the signal; Publish never blocks.
func (b *Bus) Publish(sig ports.Signal) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, s := range b.subs {
		if !s.wants(sig.Name) {
			continue
		}
		select {
		case s.ch <- sig:
		default:
			b.logger.Warn("signal dropped", "signal", sig.Name, "subscriber", s.id)
		}
	}
}

// Subscribe registers for the given names. No names means every signal.
func (b *Bus) Subscribe(names ...ports.SignalName) ports.Subscription {
	s := &subscription{
		id:  uuid.NewString(),
		ch:  make(chan ports.Signal, b.buffer),
		bus: b,
	}
	if len(names) > 0 {
		s.names = make(map[ports.SignalName]bool, len(names))
		for _, n := range names {
			s.names[n] = true
		}
	}

	b.mu.Lock()
	b.subs[s.id] = s
	b.mu.Unlock()

	return s
}

// Subscribers returns the number of live subscriptions
func (b *Bus) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Bus) remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if s, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(s.ch)
	}
}

type subscription struct {
	id    string
	names map[ports.SignalName]bool
	ch    chan ports.Signal
	bus   *Bus
	once  sync.Once
}

func (s *subscription) wants(name ports.SignalName) bool {
	return s.names == nil || s.names[name]
}

func (s *subscription) ID() string                   { return s.id }
func (s *subscription) Signals() <-chan ports.Signal { return s.ch }

// Cancel unregisters and closes the channel. Safe to call twice.
func (s *subscription) Cancel() {
	s.once.Do(func() { s.bus.remove(s.id) })
}
