package wishlist

import (
	"testing"
)

func TestAddIsIdempotentPerProduct(t *testing.T) {
	store := NewStore()

	if err := store.Add(1, 10); err != nil {
		t.Fatal(err)
	}
	if err := store.Add(1, 10); err != ErrAlreadySaved {
		t.Fatalf("expected ErrAlreadySaved, got %v", err)
	}
	if got := store.IDs(1); len(got) != 1 {
		t.Fatalf("expected one saved product, got %v", got)
	}
}

func TestRemoveUnknownProduct(t *testing.T) {
	store := NewStore()
	if err := store.Remove(1, 10); err != ErrNotSaved {
		t.Fatalf("expected ErrNotSaved, got %v", err)
	}
}

func TestWishlistsAreIsolatedPerUser(t *testing.T) {
	store := NewStore()
	store.Add(1, 10)
	store.Add(2, 20)

	if got := store.IDs(1); len(got) != 1 || got[0] != 10 {
		t.Errorf("user 1 wishlist wrong: %v", got)
	}
	if got := store.IDs(2); len(got) != 1 || got[0] != 20 {
		t.Errorf("user 2 wishlist wrong: %v", got)
	}
}

func TestIDsKeepInsertionOrder(t *testing.T) {
	store := NewStore()
	for _, id := range []int64{5, 3, 8} {
		store.Add(1, id)
	}
	store.Remove(1, 3)

	got := store.IDs(1)
	if len(got) != 2 || got[0] != 5 || got[1] != 8 {
		t.Errorf("unexpected order: %v", got)
	}
}
