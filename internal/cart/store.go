package cart

import "sync"

// Store keeps one cart per owner for the life of the process. Carts
// live in memory only: the storefront never persisted carts across
// reloads and the gateway keeps that behavior.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// cart returns the owner's cart, creating it on first use. Callers
// must hold mu.
func (s *Store) cart(owner string) *Cart {
	c, ok := s.carts[owner]
	if !ok {
		c = &Cart{}
		s.carts[owner] = c
	}
	return c
}

func (s *Store) Add(owner string, line Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(owner).Add(line)
}

func (s *Store) UpdateQuantity(owner string, productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(owner).UpdateQuantity(productID, quantity)
}

func (s *Store) Remove(owner string, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(owner).Remove(productID)
}

func (s *Store) Clear(owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, owner)
}

// Lines returns a snapshot of the owner's cart lines.
func (s *Store) Lines(owner string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(owner).Lines()
}

// Subtotal returns the owner's cart subtotal.
func (s *Store) Subtotal(owner string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(owner).Subtotal()
}

// Count returns the owner's cart item count.
func (s *Store) Count(owner string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(owner).Count()
}

// Empty reports whether the owner's cart has no lines.
func (s *Store) Empty(owner string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(owner).Empty()
}
