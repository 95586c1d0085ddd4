package session

import "sync"

// Store is the process-wide holder of the current session. Dispatch is the
// single permitted mutator: it runs Reduce synchronously under the store lock
// and then notifies subscribers with the committed value. Components read via
// Current and react via Subscribe; none of them may assign to the session
// directly.
type Store struct {
	mu      sync.Mutex
	current Session
	nextID  int
	subs    map[int]func(Session)
}

// NewStore creates a store with a nil (unauthenticated) session.
func NewStore() *Store {
	return &Store{
		subs: make(map[int]func(Session)),
	}
}

// Current returns the session as of the last committed dispatch.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Dispatch applies an action through the reducer and notifies subscribers.
// Subscribers run synchronously on the dispatching goroutine, mirroring the
// single-threaded event model the session contract assumes.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.current = Reduce(s.current, a)
	next := s.current
	subs := make([]func(Session), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}

// Subscribe registers a callback invoked after every dispatch with the
// committed session. The returned cancel function removes the subscription.
func (s *Store) Subscribe(fn func(Session)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
