package postgres

import (
	"context"

	"github.com/chrisdamba/burgerbar/internal/models"
	"github.com/chrisdamba/burgerbar/internal/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository needs. Keeping it narrow
// lets tests substitute a mock pool.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

type MenuRepository struct {
	db DB
}

var _ repositories.MenuRepository = (*MenuRepository)(nil)

func NewMenuRepository(db DB) *MenuRepository {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) BulkCreate(ctx context.Context, items []models.MenuItem) error {
	_, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"menu_items"},
		[]string{
			"id", "category", "name", "subcategory", "size", "price", "initial_stock",
		},
		pgx.CopyFromSlice(len(items), func(i int) ([]interface{}, error) {
			return []interface{}{
				items[i].ID,
				string(items[i].Category),
				items[i].Name,
				items[i].Subcategory,
				items[i].Size,
				items[i].Price,
				items[i].InitialStock,
			}, nil
		}),
	)
	return err
}

func (r *MenuRepository) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	query := `
        SELECT
            id,
            category,
            name,
            subcategory,
            size,
            price,
            initial_stock
        FROM menu_items
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		var category string
		err := rows.Scan(
			&item.ID,
			&category,
			&item.Name,
			&item.Subcategory,
			&item.Size,
			&item.Price,
			&item.InitialStock,
		)
		if err != nil {
			return nil, err
		}
		item.Category = models.Category(category)
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *MenuRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM menu_items").Scan(&count)
	return count, err
}

func (r *MenuRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, "TRUNCATE TABLE menu_items CASCADE")
	return err
}
