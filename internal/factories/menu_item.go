package factories

import (
	"math/rand"

	"github.com/chrisdamba/burgerbar/internal/models"
	"github.com/jaswdr/faker"
)

var fake = faker.New()

// MenuFactory builds synthetic menus for load simulation. Generated menus
// keep the catalogue contract: unique contiguous ids, items in every
// category, non-negative prices.
type MenuFactory struct{}

var burgerNames = []string{
	"Classic Burger", "Cheeseburger", "Bacon Burger", "BBQ Ranch Burger",
	"Mushroom Swiss Burger", "Veggie Burger", "Double Stack Burger",
	"Spicy Jalapeno Burger", "Blue Cheese Burger", "Hawaiian Burger",
}

var sideGroups = []string{"Fries", "Onion Rings", "Side Salad", "Mozzarella Sticks", "Coleslaw"}

var drinkGroups = []string{"Fountain Soda", "Iced Tea", "Milkshake", "Lemonade", "Coffee"}

var sizes = []string{"Small", "Regular", "Medium", "Large"}

func (f *MenuFactory) CreateMenu(itemCount int) []models.MenuItem {
	if itemCount < 3 {
		itemCount = 3
	}

	items := make([]models.MenuItem, 0, itemCount)
	for id := 1; id <= itemCount; id++ {
		// keep categories roughly balanced so combos remain possible
		var item models.MenuItem
		switch id % 3 {
		case 1:
			item = models.MenuItem{
				ID:       id,
				Category: models.CategoryBurgers,
				Name:     burgerNames[rand.Intn(len(burgerNames))],
				Price:    fake.Float64(2, 5, 15),
			}
		case 2:
			item = models.MenuItem{
				ID:          id,
				Category:    models.CategorySides,
				Subcategory: sideGroups[rand.Intn(len(sideGroups))],
				Size:        sizes[rand.Intn(len(sizes))],
				Price:       fake.Float64(2, 2, 7),
			}
		default:
			item = models.MenuItem{
				ID:          id,
				Category:    models.CategoryDrinks,
				Subcategory: drinkGroups[rand.Intn(len(drinkGroups))],
				Size:        sizes[rand.Intn(len(sizes))],
				Price:       fake.Float64(2, 1, 6),
			}
		}
		item.InitialStock = fake.IntBetween(2, 20)
		items = append(items, item)
	}
	return items
}
