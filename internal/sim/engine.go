package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"stocksim/internal/scoring"
	"stocksim/internal/session"
)

// Engine runs one simulated trading day at a time against a session.
// Randomness is owned by the engine so a test harness can inject a
// deterministic source and reproduce every demand draw.
type Engine struct {
	rng   *rand.Rand
	noise func() float64
}

// NewEngine returns an engine seeded from the clock.
func NewEngine() *Engine {
	return newEngine(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSeededEngine returns an engine with reproducible demand draws.
func NewSeededEngine(seed int64) *Engine {
	return newEngine(rand.New(rand.NewSource(seed)))
}

func newEngine(rng *rand.Rand) *Engine {
	e := &Engine{rng: rng}
	// ±30% daily demand noise
	e.noise = func() float64 { return 0.7 + e.rng.Float64()*0.6 }
	return e
}

// RunDay executes one full trading day for every SKU: demand draws,
// fulfillment, stockout bookkeeping, history rollover, order arrivals,
// scoring and the day-end report. Calling it again advances the clock
// again and consumes more randomness; it is deliberately not idempotent.
func (e *Engine) RunDay(s *session.Session) session.DailyReport {
	results := make(map[string]session.SKUDayResult, len(s.SKUs))
	totalRevenue := decimal.Zero
	totalCost := decimal.Zero
	var stockouts []session.StockoutEvent

	for _, sku := range s.SKUs {
		st := s.State(sku.ID)

		// 1. Draw demand with daily noise, floored at one unit.
		demand := int(math.Round(float64(sku.BaseDailyDemand) * e.noise()))
		if demand < 1 {
			demand = 1
		}

		// 2. Fulfill against on-hand stock only. In-transit orders do not
		// serve same-day demand.
		sales := demand
		if st.OnHand < sales {
			sales = st.OnHand
		}
		st.OnHand -= sales

		revenue := sku.Price.Mul(decimal.NewFromInt(int64(sales)))
		cost := sku.Cost.Mul(decimal.NewFromInt(int64(sales)))
		totalRevenue = totalRevenue.Add(revenue)
		totalCost = totalCost.Add(cost)

		// 3. Record the shortfall and the revenue it cost.
		if sales < demand {
			short := demand - sales
			stockouts = append(stockouts, session.StockoutEvent{
				SKU:         sku.ID,
				Name:        sku.Name,
				Shortage:    short,
				LostRevenue: sku.Price.Mul(decimal.NewFromInt(int64(short))),
			})
		}

		// 4. Roll the sales history forward.
		st.RecordSales(sales)

		results[sku.ID] = session.SKUDayResult{
			Demand:      demand,
			Sales:       sales,
			Revenue:     revenue,
			Profit:      revenue.Sub(cost),
			EndingStock: st.OnHand,
		}
	}

	// 5. Land arriving orders. Their cost was debited at submission.
	for _, a := range s.Pipeline.AdvanceOneDay() {
		s.State(a.SKU).Receive(a.Quantity)
	}

	// 6. Book the day and score it.
	profit := totalRevenue.Sub(totalCost)
	s.Cash = s.Cash.Add(profit)
	s.TotalRevenue = s.TotalRevenue.Add(totalRevenue)
	s.TotalProfit = s.TotalProfit.Add(profit)

	delta := scoring.DayDelta(profit, len(stockouts))
	s.AddScore(delta)

	report := session.DailyReport{
		Day:          s.Day,
		Results:      results,
		TotalRevenue: totalRevenue,
		TotalCost:    totalCost,
		Profit:       profit,
		Stockouts:    stockouts,
		Cash:         s.Cash,
		ScoreDelta:   delta,
	}
	s.Day++
	s.Reports = append(s.Reports, report)

	return report
}
