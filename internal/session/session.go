package session

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"stocksim/internal/catalog"
	"stocksim/internal/pipeline"
)

var (
	// ErrInsufficientFunds rejects an order batch whose total cost exceeds
	// available cash. Nothing in the batch is committed.
	ErrInsufficientFunds = errors.New("insufficient funds for order batch")

	// ErrUnknownSKU rejects an order for a SKU not in the catalog.
	ErrUnknownSKU = errors.New("unknown SKU")

	// ErrNegativeQuantity rejects a negative order quantity at the
	// boundary, before any pipeline state is touched.
	ErrNegativeQuantity = errors.New("order quantity cannot be negative")
)

// Session owns all mutable state for one player: inventory positions, the
// order pipeline, cash, cumulative totals, score and the report log. It is
// built for exclusive single-caller use; a second simultaneous player gets
// its own Session, never a shared one.
type Session struct {
	SKUs     []catalog.SKU
	Pipeline *pipeline.Pipeline

	Cash         decimal.Decimal
	TotalRevenue decimal.Decimal
	TotalProfit  decimal.Decimal
	Score        float64
	Day          int
	Reports      []DailyReport

	states       map[string]*catalog.State
	answeredQuiz map[string]bool
	startingCash decimal.Decimal
}

// New creates a session seeded from the default catalog.
func New(startingCash decimal.Decimal) *Session {
	s := &Session{startingCash: startingCash}
	s.Reset()
	return s
}

// Reset discards every piece of session state and reseeds from the
// catalog: stock, histories, pipeline, cash, totals, score, reports.
func (s *Session) Reset() {
	s.SKUs = catalog.DefaultCatalog()
	s.states = catalog.SeedStates()
	s.Pipeline = pipeline.New()
	s.Cash = s.startingCash
	s.TotalRevenue = decimal.Zero
	s.TotalProfit = decimal.Zero
	s.Score = 0
	s.Day = 1
	s.Reports = nil
	s.answeredQuiz = make(map[string]bool)
}

// SKU looks up catalog reference data by ID.
func (s *Session) SKU(id string) (catalog.SKU, bool) {
	for _, sku := range s.SKUs {
		if sku.ID == id {
			return sku, true
		}
	}
	return catalog.SKU{}, false
}

// State returns the mutable inventory position for a SKU, or nil for an
// unknown ID.
func (s *Session) State(id string) *catalog.State {
	return s.states[id]
}

// AddScore accumulates score. The score never decreases; non-positive
// deltas are dropped.
func (s *Session) AddScore(delta float64) {
	if delta > 0 {
		s.Score += delta
	}
}

// QuizAnswered reports whether a quiz bonus was already paid out.
func (s *Session) QuizAnswered(id string) bool {
	return s.answeredQuiz[id]
}

// MarkQuizAnswered records a paid-out quiz bonus.
func (s *Session) MarkQuizAnswered(id string) {
	s.answeredQuiz[id] = true
}

// PlacedOrder echoes one committed order back to the caller.
type PlacedOrder struct {
	SKU      string          `json:"sku"`
	Quantity int             `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
	ETADays  int             `json:"eta_days"`
}

// SubmitOrders places a batch of replenishment orders atomically. Every
// quantity is validated and the whole batch is priced before anything is
// committed, so a rejected batch leaves cash and the pipeline exactly as
// they were. Zero quantities are valid "no order" entries and are skipped.
// Cash is debited at submission, not at arrival.
func (s *Session) SubmitOrders(quantities map[string]int) ([]PlacedOrder, error) {
	for id := range quantities {
		if _, ok := s.SKU(id); !ok {
			return nil, fmt.Errorf("%s: %w", id, ErrUnknownSKU)
		}
	}

	total := decimal.Zero
	var batch []PlacedOrder

	// catalog order keeps iteration deterministic
	for _, sku := range s.SKUs {
		qty, ok := quantities[sku.ID]
		if !ok || qty == 0 {
			continue
		}
		if qty < 0 {
			return nil, fmt.Errorf("%s: %w (got %d)", sku.ID, ErrNegativeQuantity, qty)
		}
		if _, outstanding := s.Pipeline.Outstanding(sku.ID); outstanding {
			return nil, fmt.Errorf("%s: %w", sku.ID, pipeline.ErrOrderInTransit)
		}

		cost := sku.Cost.Mul(decimal.NewFromInt(int64(qty)))
		total = total.Add(cost)
		batch = append(batch, PlacedOrder{
			SKU:      sku.ID,
			Quantity: qty,
			Cost:     cost,
			ETADays:  sku.LeadTimeDays,
		})
	}

	if total.GreaterThan(s.Cash) {
		return nil, fmt.Errorf("%w: need %s, have %s", ErrInsufficientFunds, total, s.Cash)
	}

	// Commit. The checks above make these submits infallible.
	for _, po := range batch {
		sku, _ := s.SKU(po.SKU)
		_ = s.Pipeline.Submit(po.SKU, po.Quantity, sku.LeadTimeDays, po.Cost)
	}
	s.Cash = s.Cash.Sub(total)

	return batch, nil
}
