package pos

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/chrisdamba/burgerbar/internal/menu"
	"github.com/chrisdamba/burgerbar/internal/models"
	"github.com/chrisdamba/burgerbar/internal/stock"
	"github.com/lucsky/cuid"
)

// ErrUnknownItem marks a requested id with no catalogue entry. The console
// layer validates its input range, so an unknown id reaching the assembler
// means that contract was bypassed; the whole order attempt fails.
var ErrUnknownItem = errors.New("unknown item id")

// Assembler turns a batch of requested item ids into a priced order. It
// fans out one stock reservation per requested occurrence, joins the
// results, then runs the combo pairing and pricing over whatever was
// actually reserved.
type Assembler struct {
	catalogue *menu.Catalogue
	ledger    *stock.Ledger
	taxRate   float64
	discount  float64
}

func NewAssembler(catalogue *menu.Catalogue, ledger *stock.Ledger, taxRate, discount float64) *Assembler {
	return &Assembler{
		catalogue: catalogue,
		ledger:    ledger,
		taxRate:   taxRate,
		discount:  discount,
	}
}

// PlaceOrder is the sole entry point of the ordering core. Duplicated ids
// are independent units, each needing its own reservation. Out-of-stock
// items become rejections in request order; an unknown id fails the whole
// batch before anything is reserved.
func (a *Assembler) PlaceOrder(ctx context.Context, requestIDs []int) (models.OrderSummary, error) {
	// Validate every id up front so a bad one cannot strand reservations
	// already granted to the rest of the batch.
	for _, id := range requestIDs {
		if _, ok := a.catalogue.ItemByID(id); !ok {
			return models.OrderSummary{}, fmt.Errorf("place order: item %d: %w", id, ErrUnknownItem)
		}
	}

	results, err := a.reserveAll(ctx, requestIDs)
	if err != nil {
		return models.OrderSummary{}, fmt.Errorf("place order: %w", err)
	}

	var accepted []models.MenuItem
	var rejected []models.Rejection
	for _, res := range results {
		if !res.Reserved {
			rejected = append(rejected, models.Rejection{ItemID: res.ItemID, Reason: models.RejectionOutOfStock})
			continue
		}
		item, _ := a.catalogue.ItemByID(res.ItemID)
		accepted = append(accepted, item)
	}

	bundles, leftovers := pairCombos(accepted, a.discount)

	subtotal := 0.0
	for _, bundle := range bundles {
		subtotal += bundle.Price
	}
	for _, item := range leftovers {
		subtotal += item.Price
	}
	tax := subtotal * a.taxRate

	return models.OrderSummary{
		OrderID:   cuid.New(),
		PlacedAt:  time.Now().UTC(),
		Requested: requestIDs,
		Bundles:   bundles,
		Leftovers: leftovers,
		Rejected:  rejected,
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal + tax,
	}, nil
}

// reserveAll issues one concurrent reservation per requested occurrence and
// waits for all of them before returning. The result slice preserves the
// input order. If any reservation errors, every reservation the batch did
// win is released before the error is returned.
func (a *Assembler) reserveAll(ctx context.Context, requestIDs []int) ([]models.ReservationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]models.ReservationResult, len(requestIDs))
	errs := make([]error, len(requestIDs))

	var wg sync.WaitGroup
	for i, id := range requestIDs {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			ok, err := a.ledger.Reserve(id)
			results[i] = models.ReservationResult{ItemID: id, Reserved: ok}
			errs[i] = err
		}(i, id)
	}
	wg.Wait()

	for _, err := range errs {
		if err == nil {
			continue
		}
		// The batch failed as a whole: hand back whatever it reserved.
		for _, res := range results {
			if !res.Reserved {
				continue
			}
			if relErr := a.ledger.Release(res.ItemID); relErr != nil {
				log.Printf("failed to release item %d after batch error: %v", res.ItemID, relErr)
			}
		}
		return nil, err
	}

	return results, nil
}
