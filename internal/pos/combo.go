package pos

import (
	"sort"

	"github.com/chrisdamba/burgerbar/internal/models"
)

// pairCombos partitions reserved items by category and greedily bundles the
// current most expensive Burger, Side and Drink until one category runs out.
// Pairing highest prices first converts the largest possible amount into
// discounted bundles. Ties on price break by ascending id so identical
// inputs always produce identical bundles.
func pairCombos(items []models.MenuItem, discount float64) ([]models.OrderBundle, []models.MenuItem) {
	burgers := filterByCategory(items, models.CategoryBurgers)
	sides := filterByCategory(items, models.CategorySides)
	drinks := filterByCategory(items, models.CategoryDrinks)

	sortByPriceDesc(burgers)
	sortByPriceDesc(sides)
	sortByPriceDesc(drinks)

	var bundles []models.OrderBundle
	for len(burgers) > 0 && len(sides) > 0 && len(drinks) > 0 {
		bundle := models.OrderBundle{
			Burger: burgers[0],
			Side:   sides[0],
			Drink:  drinks[0],
		}
		bundle.Price = (bundle.Burger.Price + bundle.Side.Price + bundle.Drink.Price) * (1 - discount)
		bundles = append(bundles, bundle)

		burgers = burgers[1:]
		sides = sides[1:]
		drinks = drinks[1:]
	}

	// whatever is left in any category goes out at full price, burgers
	// first, then sides, then drinks
	var leftovers []models.MenuItem
	leftovers = append(leftovers, burgers...)
	leftovers = append(leftovers, sides...)
	leftovers = append(leftovers, drinks...)

	return bundles, leftovers
}

func filterByCategory(items []models.MenuItem, cat models.Category) []models.MenuItem {
	var out []models.MenuItem
	for _, item := range items {
		if item.Category == cat {
			out = append(out, item)
		}
	}
	return out
}

func sortByPriceDesc(items []models.MenuItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Price != items[j].Price {
			return items[i].Price > items[j].Price
		}
		return items[i].ID < items[j].ID
	})
}
