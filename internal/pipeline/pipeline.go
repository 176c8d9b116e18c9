package pipeline

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidQuantity rejects non-positive order quantities before any
	// pipeline state is touched.
	ErrInvalidQuantity = errors.New("order quantity must be positive")

	// ErrOrderInTransit rejects a second order for a SKU that already has
	// one outstanding. The pipeline holds at most one order per SKU.
	ErrOrderInTransit = errors.New("an order for this SKU is already in transit")
)

// PendingOrder is a replenishment order between submission and arrival.
// Cash for it was debited at submission; arrival only moves units.
type PendingOrder struct {
	SKU           string          `json:"sku"`
	Quantity      int             `json:"quantity"`
	DaysRemaining int             `json:"days_remaining"`
	CostBasis     decimal.Decimal `json:"cost_basis"`
}

// Arrival is a landed order ready to be credited to on-hand stock.
type Arrival struct {
	SKU      string
	Quantity int
}

// Pipeline tracks outstanding replenishment orders, capacity one per SKU.
type Pipeline struct {
	orders map[string]*PendingOrder
}

func New() *Pipeline {
	return &Pipeline{orders: make(map[string]*PendingOrder)}
}

// Outstanding returns a copy of the SKU's in-transit order, if any.
func (p *Pipeline) Outstanding(sku string) (PendingOrder, bool) {
	o, ok := p.orders[sku]
	if !ok {
		return PendingOrder{}, false
	}
	return *o, true
}

// All returns every in-transit order, sorted by SKU for stable output.
func (p *Pipeline) All() []PendingOrder {
	out := make([]PendingOrder, 0, len(p.orders))
	for _, o := range p.orders {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out
}

// Submit opens an in-transit order with a countdown of the SKU's lead
// time. Legal only while no order for the SKU is outstanding.
func (p *Pipeline) Submit(sku string, qty, leadTimeDays int, costBasis decimal.Decimal) error {
	if qty <= 0 {
		return fmt.Errorf("%s: %w (got %d)", sku, ErrInvalidQuantity, qty)
	}
	if _, ok := p.orders[sku]; ok {
		return fmt.Errorf("%s: %w", sku, ErrOrderInTransit)
	}

	p.orders[sku] = &PendingOrder{
		SKU:           sku,
		Quantity:      qty,
		DaysRemaining: leadTimeDays,
		CostBasis:     costBasis,
	}
	return nil
}

// AdvanceOneDay decrements every countdown and removes orders that land.
// A landed quantity appears in the returned arrivals exactly once; orders
// never partially arrive.
func (p *Pipeline) AdvanceOneDay() []Arrival {
	var arrived []Arrival
	for sku, o := range p.orders {
		o.DaysRemaining--
		if o.DaysRemaining <= 0 {
			arrived = append(arrived, Arrival{SKU: sku, Quantity: o.Quantity})
			delete(p.orders, sku)
		}
	}
	sort.Slice(arrived, func(i, j int) bool { return arrived[i].SKU < arrived[j].SKU })
	return arrived
}
