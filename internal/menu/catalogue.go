package menu

import (
	"fmt"
	"io"
	"sort"

	"github.com/chrisdamba/burgerbar/internal/models"
)

// Catalogue is the read-only lookup table of menu items, keyed by id and
// grouped by category. It is built once at startup and never mutated.
type Catalogue struct {
	items      map[int]models.MenuItem
	byCategory map[models.Category][]models.MenuItem
	maxID      int
}

func NewCatalogue(items []models.MenuItem) (*Catalogue, error) {
	c := &Catalogue{
		items:      make(map[int]models.MenuItem, len(items)),
		byCategory: make(map[models.Category][]models.MenuItem),
	}
	for _, item := range items {
		if item.ID <= 0 {
			return nil, fmt.Errorf("menu item %q has non-positive id %d", item.DisplayName(), item.ID)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("menu item %d has negative price %.2f", item.ID, item.Price)
		}
		if _, exists := c.items[item.ID]; exists {
			return nil, fmt.Errorf("duplicate menu item id %d", item.ID)
		}
		c.items[item.ID] = item
		c.byCategory[item.Category] = append(c.byCategory[item.Category], item)
		if item.ID > c.maxID {
			c.maxID = item.ID
		}
	}
	for cat := range c.byCategory {
		list := c.byCategory[cat]
		sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	}
	return c, nil
}

// ItemByID resolves an id back to its full menu record.
func (c *Catalogue) ItemByID(id int) (models.MenuItem, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Items returns every menu item ordered by id.
func (c *Catalogue) Items() []models.MenuItem {
	out := make([]models.MenuItem, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Category returns the items of one category ordered by id.
func (c *Catalogue) Category(cat models.Category) []models.MenuItem {
	return c.byCategory[cat]
}

// MaxID is the highest item id on the menu, used by the console prompt to
// range-check raw input before it reaches the core.
func (c *Catalogue) MaxID() int {
	return c.maxID
}

func (c *Catalogue) Len() int {
	return len(c.items)
}

// Render prints the grouped catalogue: burgers by name, sides and drinks
// grouped under their subcategory with one line per size.
func (c *Catalogue) Render(w io.Writer) {
	fmt.Fprintf(w, "--------- Burgers -----------\n\n")
	for _, burger := range c.Category(models.CategoryBurgers) {
		fmt.Fprintf(w, "%d. %s $%.2f\n", burger.ID, burger.Name, burger.Price)
	}

	fmt.Fprintf(w, "\n---------- Sides ------------\n")
	c.renderSized(w, models.CategorySides)

	fmt.Fprintf(w, "\n---------- Drinks ------------\n")
	c.renderSized(w, models.CategoryDrinks)

	fmt.Fprintf(w, "\n------------------------------\n\n")
}

func (c *Catalogue) renderSized(w io.Writer, cat models.Category) {
	var groups []string
	seen := make(map[string]bool)
	for _, item := range c.Category(cat) {
		if !seen[item.Subcategory] {
			seen[item.Subcategory] = true
			groups = append(groups, item.Subcategory)
		}
	}
	for _, group := range groups {
		fmt.Fprintf(w, "\n%s\n", group)
		for _, item := range c.Category(cat) {
			if item.Subcategory != group {
				continue
			}
			fmt.Fprintf(w, "%d. %s $%.2f\n", item.ID, item.Size, item.Price)
		}
	}
}
