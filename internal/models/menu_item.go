package models

import "strings"

// Category partitions the menu for combo pairing. A combo needs one item
// from each category.
type Category string

const (
	CategoryBurgers Category = "Burgers"
	CategorySides   Category = "Sides"
	CategoryDrinks  Category = "Drinks"
)

func Categories() []Category {
	return []Category{CategoryBurgers, CategorySides, CategoryDrinks}
}

type MenuItem struct {
	ID           int      `json:"id" mapstructure:"id"`
	Category     Category `json:"category" mapstructure:"category"`
	Name         string   `json:"name,omitempty" mapstructure:"name"`
	Subcategory  string   `json:"subcategory,omitempty" mapstructure:"subcategory"`
	Size         string   `json:"size,omitempty" mapstructure:"size"`
	Price        float64  `json:"price" mapstructure:"price"`
	InitialStock int      `json:"initial_stock" mapstructure:"initial_stock"`
}

// DisplayName renders a burger by name and a side or drink by size and
// subcategory, matching the receipt layout.
func (m MenuItem) DisplayName() string {
	if m.Category == CategoryBurgers {
		return m.Name
	}
	return strings.TrimSpace(m.Size + " " + m.Subcategory)
}
