package simulator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"sync"

	"github.com/chrisdamba/burgerbar/internal/factories"
	"github.com/chrisdamba/burgerbar/internal/menu"
	"github.com/chrisdamba/burgerbar/internal/models"
	"github.com/chrisdamba/burgerbar/internal/output"
	"github.com/chrisdamba/burgerbar/internal/pos"
	"github.com/chrisdamba/burgerbar/internal/stock"
	"github.com/schollz/progressbar/v3"
)

// Simulator hammers the ordering core with randomly generated batches to
// exercise the concurrent reservation path at scale. Every order summary is
// emitted to the configured output destination.
type Simulator struct {
	Config    *models.Config
	Catalogue *menu.Catalogue
	Ledger    *stock.Ledger
	Assembler *pos.Assembler
	Rng       *rand.Rand
}

type runStats struct {
	mu        sync.Mutex
	orders    int
	bundles   int
	leftovers int
	rejected  int
	failed    int
	revenue   float64
}

func NewSimulator(cfg *models.Config) (*Simulator, error) {
	items := cfg.MenuItems
	if cfg.SimRandomMenu {
		menuFactory := &factories.MenuFactory{}
		items = menuFactory.CreateMenu(cfg.SimMenuSize)
	}
	if len(items) == 0 {
		items = models.DefaultMenu()
	}

	catalogue, err := menu.NewCatalogue(items)
	if err != nil {
		return nil, fmt.Errorf("building catalogue: %w", err)
	}
	ledger := stock.NewLedger(items)

	return &Simulator{
		Config:    cfg,
		Catalogue: catalogue,
		Ledger:    ledger,
		Assembler: pos.NewAssembler(catalogue, ledger, cfg.TaxRate, cfg.ComboDiscount),
		Rng:       rand.New(rand.NewSource(int64(cfg.Seed))),
	}, nil
}

func (s *Simulator) Run() error {
	out := output.Determine(s.Config)
	defer func() {
		if err := out.Close(); err != nil {
			log.Printf("Error closing output: %v", err)
		}
	}()

	workers := s.Config.SimWorkers
	if workers < 1 {
		workers = 1
	}

	log.Printf("Simulating %d orders against a %d-item menu with %d workers",
		s.Config.SimOrders, s.Catalogue.Len(), workers)

	bar := progressbar.Default(int64(s.Config.SimOrders), "placing orders")

	// batches are drawn from the single rng up front; workers only share
	// the ledger and the output sink
	batches := make(chan []int)
	go func() {
		defer close(batches)
		for i := 0; i < s.Config.SimOrders; i++ {
			batches <- s.randomBatch()
		}
	}()

	stats := &runStats{}
	var outMu sync.Mutex

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for batch := range batches {
				s.placeOne(batch, out, &outMu, stats)
				_ = bar.Add(1)
			}
		}()
	}
	wg.Wait()
	_ = bar.Finish()

	log.Printf("Simulation complete: %d orders, %d bundles, %d leftovers, %d rejections, %d failures, $%.2f revenue",
		stats.orders, stats.bundles, stats.leftovers, stats.rejected, stats.failed, stats.revenue)
	return nil
}

func (s *Simulator) placeOne(batch []int, out output.Destination, outMu *sync.Mutex, stats *runStats) {
	summary, err := s.Assembler.PlaceOrder(context.Background(), batch)
	if err != nil {
		stats.mu.Lock()
		stats.failed++
		stats.mu.Unlock()
		log.Printf("Order failed: %v", err)
		return
	}

	event := output.NewOrderPlacedEvent(summary)
	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error serializing event: %v", err)
	} else {
		outMu.Lock()
		if err := out.WriteMessage(output.TopicOrderEvents, msg); err != nil {
			log.Printf("Failed to write message: %v", err)
		}
		outMu.Unlock()
	}

	stats.mu.Lock()
	stats.orders++
	stats.bundles += len(summary.Bundles)
	stats.leftovers += len(summary.Leftovers)
	stats.rejected += len(summary.Rejected)
	stats.revenue += summary.Total
	stats.mu.Unlock()
}

func (s *Simulator) randomBatch() []int {
	items := s.Catalogue.Items()
	maxItems := s.Config.SimMaxItems
	if maxItems < 1 {
		maxItems = 1
	}
	count := 1 + s.Rng.Intn(maxItems)
	batch := make([]int, count)
	for i := range batch {
		batch[i] = items[s.Rng.Intn(len(items))].ID
	}
	return batch
}
