package pos

import (
	"math"
	"reflect"
	"testing"

	"github.com/chrisdamba/burgerbar/internal/models"
)

const discount = 0.15

func burger(id int, price float64) models.MenuItem {
	return models.MenuItem{ID: id, Category: models.CategoryBurgers, Name: "Burger", Price: price}
}

func side(id int, price float64) models.MenuItem {
	return models.MenuItem{ID: id, Category: models.CategorySides, Subcategory: "Fries", Size: "Large", Price: price}
}

func drink(id int, price float64) models.MenuItem {
	return models.MenuItem{ID: id, Category: models.CategoryDrinks, Subcategory: "Soda", Size: "Large", Price: price}
}

func TestPairCombosSingleBundle(t *testing.T) {
	items := []models.MenuItem{burger(1, 10), side(7, 5), drink(14, 3)}

	bundles, leftovers := pairCombos(items, discount)

	if len(bundles) != 1 {
		t.Fatalf("bundles = %d, want 1", len(bundles))
	}
	if len(leftovers) != 0 {
		t.Fatalf("leftovers = %d, want 0", len(leftovers))
	}
	if diff := math.Abs(bundles[0].Price - 15.30); diff > 1e-6 {
		t.Fatalf("bundle price = %f, want 15.30", bundles[0].Price)
	}
}

func TestPairCombosLeftoverBurger(t *testing.T) {
	items := []models.MenuItem{burger(1, 10), burger(2, 8), side(7, 5), drink(14, 3)}

	bundles, leftovers := pairCombos(items, discount)

	if len(bundles) != 1 {
		t.Fatalf("bundles = %d, want 1", len(bundles))
	}
	if bundles[0].Burger.Price != 10 {
		t.Fatalf("bundle took burger priced %f, want the $10 one", bundles[0].Burger.Price)
	}
	if len(leftovers) != 1 || leftovers[0].Price != 8 {
		t.Fatalf("leftovers = %+v, want the $8 burger", leftovers)
	}
}

func TestPairCombosBundleCountIsCategoryMin(t *testing.T) {
	tests := map[string]struct {
		items       []models.MenuItem
		wantBundles int
	}{
		"no items": {items: nil, wantBundles: 0},
		"missing category": {
			items:       []models.MenuItem{burger(1, 10), burger(2, 9), side(7, 4)},
			wantBundles: 0,
		},
		"two full combos plus extras": {
			items: []models.MenuItem{
				burger(1, 10), burger(2, 9), burger(3, 8),
				side(7, 5), side(8, 4),
				drink(14, 3), drink(15, 2), drink(16, 1),
			},
			wantBundles: 2,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			bundles, leftovers := pairCombos(tt.items, discount)
			if len(bundles) != tt.wantBundles {
				t.Fatalf("bundles = %d, want %d", len(bundles), tt.wantBundles)
			}
			// every input item lands in exactly one bundle or leftovers
			if got := 3*len(bundles) + len(leftovers); got != len(tt.items) {
				t.Fatalf("placed %d items, want %d", got, len(tt.items))
			}
		})
	}
}

func TestPairCombosGreedyHighestPriceFirst(t *testing.T) {
	items := []models.MenuItem{
		burger(1, 8), burger(2, 12),
		side(7, 3), side(8, 5),
		drink(14, 2), drink(15, 4),
	}

	bundles, _ := pairCombos(items, discount)

	if len(bundles) != 2 {
		t.Fatalf("bundles = %d, want 2", len(bundles))
	}
	first := bundles[0]
	if first.Burger.Price != 12 || first.Side.Price != 5 || first.Drink.Price != 4 {
		t.Fatalf("first bundle = %.0f/%.0f/%.0f, want 12/5/4",
			first.Burger.Price, first.Side.Price, first.Drink.Price)
	}
}

func TestPairCombosPriceTiesBreakByID(t *testing.T) {
	items := []models.MenuItem{
		burger(3, 10), burger(1, 10), burger(2, 10),
		side(7, 5), drink(14, 3),
	}

	bundles, leftovers := pairCombos(items, discount)

	if len(bundles) != 1 {
		t.Fatalf("bundles = %d, want 1", len(bundles))
	}
	if bundles[0].Burger.ID != 1 {
		t.Fatalf("tie broken to id %d, want 1", bundles[0].Burger.ID)
	}
	if len(leftovers) != 2 || leftovers[0].ID != 2 || leftovers[1].ID != 3 {
		t.Fatalf("leftover order = %+v, want ids 2 then 3", leftovers)
	}
}

func TestPairCombosDeterministic(t *testing.T) {
	items := []models.MenuItem{
		burger(1, 10), burger(2, 10), burger(3, 7),
		side(7, 5), side(8, 5),
		drink(14, 3), drink(15, 3), drink(16, 3),
	}

	firstBundles, firstLeftovers := pairCombos(items, discount)
	for i := 0; i < 50; i++ {
		bundles, leftovers := pairCombos(items, discount)
		if !reflect.DeepEqual(bundles, firstBundles) {
			t.Fatalf("run %d produced different bundles", i)
		}
		if !reflect.DeepEqual(leftovers, firstLeftovers) {
			t.Fatalf("run %d produced different leftovers", i)
		}
	}
}
