// Package runner plays an unattended replenishment session. It follows
// the system policy every review day, which makes it a quick way to eye
// the simulator's behavior over many days without an MCP client.
package runner

import (
	"fmt"

	"github.com/shopspring/decimal"

	"stocksim/internal/policy"
	"stocksim/internal/scoring"
	"stocksim/internal/session"
	"stocksim/internal/sim"
	"stocksim/internal/stats"
)

type Config struct {
	Days         int
	Seed         int64
	StartingCash decimal.Decimal
	ServiceLevel float64
}

type Result struct {
	Days    []session.DailyReport `json:"days"`
	Cash    decimal.Decimal       `json:"cash"`
	Profit  decimal.Decimal       `json:"profit"`
	Score   float64               `json:"score"`
	Grade   scoring.Grade         `json:"grade"`
	Orders  int                   `json:"orders_placed"`
	Skipped int                   `json:"orders_skipped"`
}

// Run plays cfg.Days trading days, reordering whatever the policy
// suggests on each SKU's review day. Orders the cash cannot cover are
// skipped rather than failing the run.
func Run(cfg Config) (*Result, error) {
	if cfg.Days < 1 {
		return nil, fmt.Errorf("days must be at least 1, got %d", cfg.Days)
	}

	sess := session.New(cfg.StartingCash)
	engine := sim.NewEngine()
	if cfg.Seed != 0 {
		engine = sim.NewSeededEngine(cfg.Seed)
	}

	res := &Result{}
	for day := 0; day < cfg.Days; day++ {
		orders := planOrders(sess, cfg.ServiceLevel, day)
		if len(orders) > 0 {
			if _, err := sess.SubmitOrders(orders); err != nil {
				res.Skipped += len(orders)
			} else {
				res.Orders += len(orders)
			}
		}
		res.Days = append(res.Days, engine.RunDay(sess))
	}

	res.Cash = sess.Cash
	res.Profit = sess.TotalProfit
	res.Score = sess.Score
	res.Grade = scoring.GradeFor(sess.Score)
	return res, nil
}

func planOrders(sess *session.Session, serviceLevel float64, day int) map[string]int {
	orders := make(map[string]int)
	for _, sku := range sess.SKUs {
		if day%sku.OrderIntervalDays != 0 {
			continue
		}
		if _, inTransit := sess.Pipeline.Outstanding(sku.ID); inTransit {
			continue
		}

		st := sess.State(sku.ID)
		profile := stats.Analyze(st.History)
		plan, err := policy.Evaluate(policy.Params{
			ForecastMean:      profile.Mean,
			ServiceLevel:      serviceLevel,
			OrderIntervalDays: sku.OrderIntervalDays,
		}, profile.StdDev, sku.LeadTimeDays, st.OnHand)
		if err != nil {
			continue
		}
		if plan.ShouldReorder && plan.SuggestedQty > 0 {
			orders[sku.ID] = plan.SuggestedQty
		}
	}
	return orders
}
