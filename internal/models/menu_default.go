package models

// DefaultMenu is the built-in burger-bar menu used when no seed data is
// configured. Ids are contiguous from 1 so console input validation can
// range-check against the catalogue.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{ID: 1, Category: CategoryBurgers, Name: "Classic Burger", Price: 7.99, InitialStock: 8},
		{ID: 2, Category: CategoryBurgers, Name: "Cheeseburger", Price: 8.99, InitialStock: 8},
		{ID: 3, Category: CategoryBurgers, Name: "Bacon Burger", Price: 9.99, InitialStock: 6},
		{ID: 4, Category: CategoryBurgers, Name: "BBQ Ranch Burger", Price: 10.99, InitialStock: 5},
		{ID: 5, Category: CategoryBurgers, Name: "Veggie Burger", Price: 8.49, InitialStock: 6},
		{ID: 6, Category: CategoryBurgers, Name: "Double Stack Burger", Price: 11.99, InitialStock: 4},

		{ID: 7, Category: CategorySides, Subcategory: "Fries", Size: "Small", Price: 2.49, InitialStock: 10},
		{ID: 8, Category: CategorySides, Subcategory: "Fries", Size: "Medium", Price: 3.49, InitialStock: 10},
		{ID: 9, Category: CategorySides, Subcategory: "Fries", Size: "Large", Price: 4.49, InitialStock: 8},
		{ID: 10, Category: CategorySides, Subcategory: "Onion Rings", Size: "Small", Price: 2.99, InitialStock: 8},
		{ID: 11, Category: CategorySides, Subcategory: "Onion Rings", Size: "Large", Price: 4.99, InitialStock: 6},
		{ID: 12, Category: CategorySides, Subcategory: "Side Salad", Size: "Regular", Price: 3.99, InitialStock: 6},
		{ID: 13, Category: CategorySides, Subcategory: "Side Salad", Size: "Large", Price: 5.49, InitialStock: 4},

		{ID: 14, Category: CategoryDrinks, Subcategory: "Fountain Soda", Size: "Small", Price: 1.99, InitialStock: 12},
		{ID: 15, Category: CategoryDrinks, Subcategory: "Fountain Soda", Size: "Medium", Price: 2.49, InitialStock: 12},
		{ID: 16, Category: CategoryDrinks, Subcategory: "Fountain Soda", Size: "Large", Price: 2.99, InitialStock: 10},
		{ID: 17, Category: CategoryDrinks, Subcategory: "Iced Tea", Size: "Regular", Price: 2.29, InitialStock: 8},
		{ID: 18, Category: CategoryDrinks, Subcategory: "Iced Tea", Size: "Large", Price: 2.79, InitialStock: 8},
		{ID: 19, Category: CategoryDrinks, Subcategory: "Milkshake", Size: "Regular", Price: 4.49, InitialStock: 6},
		{ID: 20, Category: CategoryDrinks, Subcategory: "Milkshake", Size: "Large", Price: 5.49, InitialStock: 4},
	}
}
