package wishlist

import (
	"errors"
	"sync"
)

var (
	ErrAlreadySaved = errors.New("product already on wishlist")
	ErrNotSaved     = errors.New("product not on wishlist")
)

// Store keeps each signed-in customer's saved product ids. Wishlists
// live in the gateway; only the product ids are kept, the catalog is
// consulted when the list is rendered.
type Store struct {
	mu    sync.Mutex
	saved map[int64][]int64
}

func NewStore() *Store {
	return &Store{saved: make(map[int64][]int64)}
}

func (s *Store) Add(userID, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.saved[userID] {
		if id == productID {
			return ErrAlreadySaved
		}
	}
	s.saved[userID] = append(s.saved[userID], productID)
	return nil
}

func (s *Store) Remove(userID, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.saved[userID]
	for i, id := range ids {
		if id == productID {
			s.saved[userID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return ErrNotSaved
}

// IDs returns the saved product ids in insertion order.
func (s *Store) IDs(userID int64) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int64, len(s.saved[userID]))
	copy(out, s.saved[userID])
	return out
}
