package live

import "sync"

// Signal fans a change notification out to any number of listeners.
// Each listener owns a coalescing channel, so a slow listener never blocks Notify.
type Signal struct {
	mu        sync.Mutex
	listeners map[chan struct{}]struct{}
}

// NewSignal returns a Signal without listeners.
func NewSignal() *Signal {
	return &Signal{listeners: make(map[chan struct{}]struct{})}
}

// Subscribe registers a listener. The returned function unregisters it and is idempotent.
func (s *Signal) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	s.mu.Lock()
	s.listeners[ch] = struct{}{}
	s.mu.Unlock()

	var once sync.Once

	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, ch)
			s.mu.Unlock()
		})
	}
}

// Notify wakes every listener.
func (s *Signal) Notify() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ch := range s.listeners {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Len returns the number of registered listeners.
func (s *Signal) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.listeners)
}
