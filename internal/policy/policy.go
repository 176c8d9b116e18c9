package policy

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// InputError reports a policy parameter rejected at the boundary, naming
// the offending field so the caller can correct it.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Params are the player- or system-supplied policy inputs for one SKU and
// one decision cycle. Everything derived from them is recomputed on demand
// and never cached on the session.
type Params struct {
	ForecastMean      float64 `json:"forecast_mean"`
	ServiceLevel      float64 `json:"service_level"`
	OrderIntervalDays int     `json:"order_interval_days"`
}

// Validate rejects out-of-range inputs before any calculation runs. No
// value is ever clamped silently.
func (p Params) Validate() error {
	if math.IsNaN(p.ForecastMean) || p.ForecastMean < 0 {
		return &InputError{Field: "forecast_mean", Reason: "must be a number >= 0"}
	}
	if math.IsNaN(p.ServiceLevel) || p.ServiceLevel <= 0 || p.ServiceLevel >= 1 {
		return &InputError{Field: "service_level", Reason: "must lie strictly between 0 and 1"}
	}
	if p.OrderIntervalDays < 1 {
		return &InputError{Field: "order_interval_days", Reason: "must be at least 1 day"}
	}
	return nil
}

// ZScore returns the inverse standard normal CDF at the service level.
// The boundaries 0 and 1 map to ±infinity and are rejected, not computed.
func ZScore(serviceLevel float64) (float64, error) {
	if math.IsNaN(serviceLevel) || serviceLevel <= 0 || serviceLevel >= 1 {
		return 0, &InputError{Field: "service_level", Reason: "must lie strictly between 0 and 1"}
	}
	return distuv.Normal{Mu: 0, Sigma: 1}.Quantile(serviceLevel), nil
}

// SafetyStock is the buffer against demand variability during lead time:
// z * sigma * sqrt(L).
func SafetyStock(z, sigma float64, leadTimeDays int) float64 {
	return z * sigma * math.Sqrt(float64(leadTimeDays))
}

// ReorderPoint is the expected lead-time demand plus the safety buffer.
func ReorderPoint(forecastMean float64, leadTimeDays int, safetyStock float64) float64 {
	return forecastMean*float64(leadTimeDays) + safetyStock
}

// TargetStock is the level an arriving order should restore: demand over
// lead time plus one review interval, plus the safety buffer.
func TargetStock(forecastMean float64, leadTimeDays, orderIntervalDays int, safetyStock float64) float64 {
	return forecastMean*float64(leadTimeDays+orderIntervalDays) + safetyStock
}

// ShouldReorder triggers at the boundary: stock exactly at the reorder
// point places an order, trading carrying cost for availability.
func ShouldReorder(onHand int, reorderPoint float64) bool {
	return float64(onHand) <= reorderPoint
}

// OrderQuantity sizes an order against the target level. The fractional
// target is truncated toward zero and the result is never negative.
func OrderQuantity(targetStock float64, onHand int) int {
	qty := targetStock - float64(onHand)
	if qty <= 0 {
		return 0
	}
	return int(qty)
}

// Plan is the advisory replenishment decision for one SKU. The caller may
// override the suggested quantity with any non-negative integer; the
// engine only evaluates outcomes downstream, it does not enforce advice.
type Plan struct {
	ZScore        float64 `json:"z_score"`
	SafetyStock   float64 `json:"safety_stock"`
	ReorderPoint  float64 `json:"reorder_point"`
	TargetStock   float64 `json:"target_stock"`
	ShouldReorder bool    `json:"should_reorder"`
	SuggestedQty  int     `json:"suggested_qty"`
}

// Evaluate turns demand statistics and policy parameters into a full
// replenishment plan for one SKU.
func Evaluate(p Params, sigma float64, leadTimeDays, onHand int) (Plan, error) {
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}
	if leadTimeDays < 0 {
		return Plan{}, &InputError{Field: "lead_time_days", Reason: "must be >= 0"}
	}

	z, err := ZScore(p.ServiceLevel)
	if err != nil {
		return Plan{}, err
	}

	ss := SafetyStock(z, sigma, leadTimeDays)
	rop := ReorderPoint(p.ForecastMean, leadTimeDays, ss)
	target := TargetStock(p.ForecastMean, leadTimeDays, p.OrderIntervalDays, ss)

	plan := Plan{
		ZScore:       z,
		SafetyStock:  ss,
		ReorderPoint: rop,
		TargetStock:  target,
	}
	plan.ShouldReorder = ShouldReorder(onHand, rop)
	if plan.ShouldReorder {
		plan.SuggestedQty = OrderQuantity(target, onHand)
	}
	return plan, nil
}
