package models

import "time"

// ReservationResult pairs one requested item occurrence with the outcome of
// its stock reservation. Results keep the order the ids were requested in.
type ReservationResult struct {
	ItemID   int  `json:"item_id"`
	Reserved bool `json:"reserved"`
}

// OrderBundle is one Burger + one Side + one Drink sold together at the
// combo discount. Price is the discounted price of the three items combined.
type OrderBundle struct {
	Burger MenuItem `json:"burger"`
	Side   MenuItem `json:"side"`
	Drink  MenuItem `json:"drink"`
	Price  float64  `json:"price"`
}

func (b OrderBundle) Items() []MenuItem {
	return []MenuItem{b.Burger, b.Side, b.Drink}
}

type Rejection struct {
	ItemID int    `json:"item_id"`
	Reason string `json:"reason"`
}

const RejectionOutOfStock = "out of stock"

// OrderSummary is the result of one complete order cycle. Monetary fields
// carry full float64 precision; rounding happens at render time.
type OrderSummary struct {
	OrderID   string        `json:"order_id"`
	PlacedAt  time.Time     `json:"placed_at"`
	Requested []int         `json:"requested"`
	Bundles   []OrderBundle `json:"bundles"`
	Leftovers []MenuItem    `json:"leftovers"`
	Rejected  []Rejection   `json:"rejected,omitempty"`
	Subtotal  float64       `json:"subtotal"`
	Tax       float64       `json:"tax"`
	Total     float64       `json:"total"`
}

// AcceptedCount is the number of reserved items that made it into the order,
// bundled or not.
func (s OrderSummary) AcceptedCount() int {
	return 3*len(s.Bundles) + len(s.Leftovers)
}
