package stock

import (
	"errors"
	"sync"
	"testing"

	"github.com/chrisdamba/burgerbar/internal/models"
)

func testItems() []models.MenuItem {
	return []models.MenuItem{
		{ID: 1, Category: models.CategoryBurgers, Name: "Classic Burger", Price: 7.99, InitialStock: 2},
		{ID: 7, Category: models.CategorySides, Subcategory: "Fries", Size: "Small", Price: 2.49, InitialStock: 0},
		{ID: 14, Category: models.CategoryDrinks, Subcategory: "Fountain Soda", Size: "Small", Price: 1.99, InitialStock: 1},
	}
}

func TestLedgerReserve(t *testing.T) {
	tests := map[string]struct {
		id           int
		wantReserved bool
		wantErr      error
		wantLeft     int
	}{
		"available item decrements": {id: 1, wantReserved: true, wantLeft: 1},
		"out of stock is not an error": {id: 7, wantReserved: false, wantLeft: 0},
		"last unit reservable":         {id: 14, wantReserved: true, wantLeft: 0},
		"unknown id errors":            {id: 99, wantErr: ErrItemNotFound},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			ledger := NewLedger(testItems())

			ok, err := ledger.Reserve(tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Reserve(%d) error = %v, want %v", tt.id, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Reserve(%d) unexpected error: %v", tt.id, err)
			}
			if ok != tt.wantReserved {
				t.Fatalf("Reserve(%d) = %v, want %v", tt.id, ok, tt.wantReserved)
			}

			left, err := ledger.Remaining(tt.id)
			if err != nil {
				t.Fatalf("Remaining(%d) unexpected error: %v", tt.id, err)
			}
			if left != tt.wantLeft {
				t.Fatalf("Remaining(%d) = %d, want %d", tt.id, left, tt.wantLeft)
			}
		})
	}
}

func TestLedgerReserveExhausts(t *testing.T) {
	ledger := NewLedger(testItems())

	for i := 0; i < 2; i++ {
		ok, err := ledger.Reserve(1)
		if err != nil || !ok {
			t.Fatalf("reservation %d: got (%v, %v), want (true, nil)", i, ok, err)
		}
	}

	ok, err := ledger.Reserve(1)
	if err != nil {
		t.Fatalf("unexpected error after exhaustion: %v", err)
	}
	if ok {
		t.Fatal("reserved an item with zero stock")
	}
}

func TestLedgerRelease(t *testing.T) {
	ledger := NewLedger(testItems())

	if _, err := ledger.Reserve(14); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if err := ledger.Release(14); err != nil {
		t.Fatalf("Release: %v", err)
	}
	left, err := ledger.Remaining(14)
	if err != nil {
		t.Fatalf("Remaining: %v", err)
	}
	if left != 1 {
		t.Fatalf("Remaining after release = %d, want 1", left)
	}

	if err := ledger.Release(99); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("Release(99) error = %v, want ErrItemNotFound", err)
	}
}

func TestLedgerSnapshotDoesNotMutate(t *testing.T) {
	ledger := NewLedger(testItems())

	first := ledger.Snapshot()
	first[1] = 1000 // mutating the copy must not touch the ledger

	second := ledger.Snapshot()
	if second[1] != 2 {
		t.Fatalf("snapshot leaked mutation: remaining for 1 = %d, want 2", second[1])
	}
	if len(second) != 3 {
		t.Fatalf("snapshot size = %d, want 3", len(second))
	}
}

// Stock of N hammered by many more goroutines must grant exactly N
// reservations and never go negative.
func TestLedgerConcurrentReserveSameItem(t *testing.T) {
	const stock = 5
	const attempts = 200

	ledger := NewLedger([]models.MenuItem{
		{ID: 1, Category: models.CategoryBurgers, Name: "Classic Burger", Price: 7.99, InitialStock: stock},
	})

	var wg sync.WaitGroup
	results := make([]bool, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := ledger.Reserve(1)
			if err != nil {
				t.Errorf("Reserve: %v", err)
				return
			}
			results[i] = ok
		}(i)
	}
	wg.Wait()

	granted := 0
	for _, ok := range results {
		if ok {
			granted++
		}
	}
	if granted != stock {
		t.Fatalf("granted %d reservations for stock of %d", granted, stock)
	}

	left, err := ledger.Remaining(1)
	if err != nil {
		t.Fatalf("Remaining: %v", err)
	}
	if left != 0 {
		t.Fatalf("remaining = %d, want 0", left)
	}
}
