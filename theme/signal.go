package theme

import "sync"

// Signal is an observable theme value. Readers subscribe for change
// notifications; only the toggle control calls Set.
type Signal struct {
	mu     sync.Mutex
	value  Theme
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn func(Theme)
}

// NewSignal creates a signal holding initial.
func NewSignal(initial Theme) *Signal {
	return &Signal{value: initial}
}

// Get returns the current theme.
func (s *Signal) Get() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set stores t and notifies subscribers in subscription order.
// Setting the current value notifies nobody.
func (s *Signal) Set(t Theme) {
	s.mu.Lock()
	if t == s.value {
		s.mu.Unlock()
		return
	}
	s.value = t
	fns := make([]func(Theme), len(s.subs))
	for i, sub := range s.subs {
		fns[i] = sub.fn
	}
	s.mu.Unlock()

	// Callbacks may subscribe or unsubscribe, so call them unlocked.
	for _, fn := range fns {
		fn(t)
	}
}

// Subscribe registers fn for change notifications. The returned function
// removes the subscription and may be called any number of times.
func (s *Signal) Subscribe(fn func(Theme)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Subscribers returns the number of live subscriptions.
func (s *Signal) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
