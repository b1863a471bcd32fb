package stock

import (
	"errors"
	"fmt"
	"sync"

	"github.com/chrisdamba/burgerbar/internal/models"
)

// ErrItemNotFound marks a reservation against an id the ledger has never
// seen. Callers are expected to validate ids against the catalogue first, so
// hitting this is a contract violation, not an out-of-stock condition.
var ErrItemNotFound = errors.New("item not found in stock ledger")

// Ledger is the single source of truth for remaining stock per item. All
// mutation goes through Reserve and Release; the check-and-decrement in
// Reserve is atomic so concurrent reservations can never oversell an item.
type Ledger struct {
	mu        sync.Mutex
	remaining map[int]int
}

// NewLedger seeds the ledger from catalogue items and their initial stock.
func NewLedger(items []models.MenuItem) *Ledger {
	remaining := make(map[int]int, len(items))
	for _, item := range items {
		remaining[item.ID] = item.InitialStock
	}
	return &Ledger{remaining: remaining}
}

// Reserve atomically checks availability for id and, if at least one unit
// remains, decrements it and returns true. Out of stock is a normal false
// result, not an error; only an unknown id returns an error.
func (l *Ledger) Reserve(id int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	qty, ok := l.remaining[id]
	if !ok {
		return false, fmt.Errorf("reserve item %d: %w", id, ErrItemNotFound)
	}
	if qty <= 0 {
		return false, nil
	}
	l.remaining[id] = qty - 1
	return true, nil
}

// Release returns one previously reserved unit of id to the ledger. It is
// the compensation path for reservations granted in a batch that later
// failed as a whole.
func (l *Ledger) Release(id int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	qty, ok := l.remaining[id]
	if !ok {
		return fmt.Errorf("release item %d: %w", id, ErrItemNotFound)
	}
	l.remaining[id] = qty + 1
	return nil
}

// Snapshot returns a copy of the remaining quantities for display purposes.
// It never mutates ledger state.
func (l *Ledger) Snapshot() map[int]int {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[int]int, len(l.remaining))
	for id, qty := range l.remaining {
		out[id] = qty
	}
	return out
}

// Remaining reports the current count for a single id.
func (l *Ledger) Remaining(id int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	qty, ok := l.remaining[id]
	if !ok {
		return 0, fmt.Errorf("remaining for item %d: %w", id, ErrItemNotFound)
	}
	return qty, nil
}
