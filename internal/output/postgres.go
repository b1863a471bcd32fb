package output

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chrisdamba/burgerbar/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresOutput struct {
	pool *pgxpool.Pool
}

func NewPostgresOutput(ctx context.Context, cfg *models.DatabaseConfig) (*PostgresOutput, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return &PostgresOutput{pool: pool}, nil
}

func (p *PostgresOutput) WriteMessage(topic string, msg []byte) error {
	var event OrderPlacedEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return err
	}

	query := `
        INSERT INTO order_events (
            order_id, event_type, placed_at, item_ids,
            bundles, leftovers, rejected, subtotal, tax, total
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
        )
    `

	_, err := p.pool.Exec(context.Background(), query,
		event.OrderID,
		event.EventType,
		time.Unix(event.Timestamp, 0).UTC(),
		event.ItemIDs,
		event.Bundles,
		event.Leftovers,
		event.Rejected,
		event.Subtotal,
		event.Tax,
		event.Total,
	)
	if err != nil {
		return fmt.Errorf("failed to insert into order_events: %w", err)
	}

	return nil
}

func (p *PostgresOutput) Close() error {
	p.pool.Close()
	return nil
}
