package cart

import "sync"

// Store keeps one cart per front-of-house session, keyed by the session
// cookie. Carts live in memory only; a submitted or cleared cart is gone.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Update runs fn against the session's cart under the store lock,
// creating an empty cart on first touch.
func (s *Store) Update(sessionID string, fn func(*Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = &Cart{}
		s.carts[sessionID] = c
	}
	fn(c)
}

// Snapshot returns a copy of the session's cart items and their total.
func (s *Store) Snapshot(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		return &Cart{}
	}
	copied := &Cart{}
	if len(c.Items) > 0 {
		copied.Items = append(copied.Items, c.Items...)
	}
	return copied
}

// Drop removes the session's cart entirely.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
