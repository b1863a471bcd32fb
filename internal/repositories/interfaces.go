package repositories

import (
	"context"

	"github.com/chrisdamba/burgerbar/internal/models"
)

// MenuRepository loads and seeds catalogue data when the menu source is a
// database instead of the config file. Read-only during an ordering session.
type MenuRepository interface {
	GetAll(ctx context.Context) ([]models.MenuItem, error)
	BulkCreate(ctx context.Context, items []models.MenuItem) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
