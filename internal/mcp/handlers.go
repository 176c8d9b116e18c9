package mcp

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"stocksim/internal/policy"
	"stocksim/internal/scoring"
	"stocksim/internal/stats"
)

func (s *Server) handleListSKUs() (interface{}, error) {
	var skus []interface{}
	for _, sku := range s.session.SKUs {
		st := s.session.State(sku.ID)
		skus = append(skus, map[string]interface{}{
			"id":                  sku.ID,
			"name":                sku.Name,
			"icon":                sku.Icon,
			"price":               sku.Price,
			"cost":                sku.Cost,
			"margin_pct":          sku.Margin(),
			"lead_time_days":      sku.LeadTimeDays,
			"order_interval_days": sku.OrderIntervalDays,
			"on_hand":             st.OnHand,
		})
	}
	return map[string]interface{}{"skus": skus}, nil
}

func (s *Server) handleInventoryStatus() (interface{}, error) {
	var rows []interface{}
	for _, sku := range s.session.SKUs {
		st := s.session.State(sku.ID)
		profile := stats.Analyze(st.History)

		daysOfCover := 0.0
		if profile.Mean > 0 {
			daysOfCover = float64(st.OnHand) / profile.Mean
		}

		// urgency against the lead-time horizon
		status := "ok"
		advice := "Safe for now."
		switch {
		case daysOfCover < float64(sku.LeadTimeDays):
			status = "critical"
			advice = "Cover is below the lead time. A stockout is likely before a new order could arrive."
		case daysOfCover < float64(sku.LeadTimeDays)+2:
			status = "warning"
			advice = "Approaching the reorder point."
		}

		rows = append(rows, map[string]interface{}{
			"sku":            sku.ID,
			"name":           sku.Name,
			"on_hand":        st.OnHand,
			"daily_mean":     profile.Mean,
			"days_of_cover":  daysOfCover,
			"lead_time_days": sku.LeadTimeDays,
			"status":         status,
			"advice":         advice,
		})
	}
	return map[string]interface{}{"inventory": rows}, nil
}

func (s *Server) handleDemandStats() (interface{}, error) {
	var rows []interface{}
	for _, sku := range s.session.SKUs {
		st := s.session.State(sku.ID)
		profile := stats.Analyze(st.History)

		rows = append(rows, map[string]interface{}{
			"sku":            sku.ID,
			"name":           sku.Name,
			"history":        st.History,
			"mean":           profile.Mean,
			"std_dev":        profile.StdDev,
			"cv":             profile.CV,
			"recent_mean_3d": stats.RecentMean(st.History, 3),
			"volatility":     stats.ClassifyVolatility(profile.CV),
		})
	}
	return map[string]interface{}{"demand": rows}, nil
}

func (s *Server) handleEvaluateReplenishment(args map[string]interface{}) (interface{}, error) {
	skuID := asString(args["sku"])
	sku, ok := s.session.SKU(skuID)
	if !ok {
		return nil, fmt.Errorf("unknown SKU: %s", skuID)
	}
	st := s.session.State(skuID)
	profile := stats.Analyze(st.History)

	// Documented fallbacks for omitted inputs: historical mean, 95%
	// service, the SKU's default review interval. Supplied values are
	// validated strictly, never clamped.
	forecast, ok := asFloat(args["forecast_mean"])
	if !ok {
		forecast = profile.Mean
	}
	serviceLevel, ok := asFloat(args["service_level"])
	if !ok {
		serviceLevel = 0.95
	}
	interval, ok := asInt(args["order_interval_days"])
	if !ok {
		interval = sku.OrderIntervalDays
	}

	params := policy.Params{
		ForecastMean:      forecast,
		ServiceLevel:      serviceLevel,
		OrderIntervalDays: interval,
	}
	plan, err := policy.Evaluate(params, profile.StdDev, sku.LeadTimeDays, st.OnHand)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"sku":            sku.ID,
		"on_hand":        st.OnHand,
		"params":         params,
		"sigma":          profile.StdDev,
		"lead_time_days": sku.LeadTimeDays,
		"plan":           plan,
	}, nil
}

func (s *Server) handleAssessForecast(args map[string]interface{}) (interface{}, error) {
	skuID := asString(args["sku"])
	sku, ok := s.session.SKU(skuID)
	if !ok {
		return nil, fmt.Errorf("unknown SKU: %s", skuID)
	}
	forecast, ok := asFloat(args["forecast_mean"])
	if !ok {
		return nil, fmt.Errorf("forecast_mean is required")
	}

	profile := stats.Analyze(s.session.State(skuID).History)
	assessment := policy.AssessForecast(forecast, profile.Mean, sku.BaseDailyDemand)

	return map[string]interface{}{
		"sku":        sku.ID,
		"assessment": assessment,
	}, nil
}

func (s *Server) handleSubmitOrders(args map[string]interface{}) (interface{}, error) {
	quantities, err := asQuantities(args["orders"])
	if err != nil {
		return nil, err
	}

	placed, err := s.session.SubmitOrders(quantities)
	if err != nil {
		return nil, err
	}

	log.Info().Int("orders", len(placed)).Str("cash", s.session.Cash.String()).Msg("Order batch committed")

	return map[string]interface{}{
		"placed":         placed,
		"remaining_cash": s.session.Cash,
	}, nil
}

func (s *Server) handleAdvanceDay() (interface{}, error) {
	report := s.engine.RunDay(s.session)

	log.Info().
		Int("day", report.Day).
		Str("profit", report.Profit.String()).
		Int("stockouts", len(report.Stockouts)).
		Msg("Simulated one trading day")

	return report, nil
}

func (s *Server) handleSessionSummary() (interface{}, error) {
	sess := s.session

	marginPct := 0.0
	if sess.TotalRevenue.IsPositive() {
		marginPct = sess.TotalProfit.Div(sess.TotalRevenue).InexactFloat64() * 100
	}

	return map[string]interface{}{
		"day":            sess.Day,
		"days_played":    len(sess.Reports),
		"cash":           sess.Cash,
		"total_revenue":  sess.TotalRevenue,
		"total_profit":   sess.TotalProfit,
		"margin_pct":     marginPct,
		"score":          sess.Score,
		"grade":          scoring.GradeFor(sess.Score),
		"pending_orders": sess.Pipeline.All(),
	}, nil
}

func (s *Server) handleListQuiz() (interface{}, error) {
	return map[string]interface{}{"questions": scoring.Questions()}, nil
}

func (s *Server) handleAnswerQuiz(args map[string]interface{}) (interface{}, error) {
	id := asString(args["question_id"])
	choice, ok := asInt(args["choice"])
	if !ok {
		return nil, fmt.Errorf("choice is required")
	}

	correct, err := scoring.CheckAnswer(id, choice)
	if err != nil {
		return nil, err
	}

	// the bonus is paid once; wrong answers may be retried
	bonus := 0.0
	if correct && !s.session.QuizAnswered(id) {
		bonus = scoring.QuizBonus
		s.session.AddScore(bonus)
		s.session.MarkQuizAnswered(id)
	}

	return map[string]interface{}{
		"question_id": id,
		"correct":     correct,
		"bonus":       bonus,
		"score":       s.session.Score,
	}, nil
}

func (s *Server) handleResetSession() (interface{}, error) {
	s.session.Reset()
	log.Info().Msg("Session reset to seeded state")
	return map[string]interface{}{
		"day":  s.session.Day,
		"cash": s.session.Cash,
	}, nil
}
