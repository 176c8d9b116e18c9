package scoring

import (
	"github.com/shopspring/decimal"
)

const (
	// QuizBonus is awarded once per correctly answered knowledge check.
	QuizBonus = 10.0

	// noStockoutBonus rewards a day where no SKU ran dry. All or nothing;
	// one stockout anywhere forfeits the whole bonus.
	noStockoutBonus = 50.0

	// profitShare is the fraction of a positive daily profit scored.
	profitShare = 0.1
)

// DayDelta converts one day's outcome into a score contribution. Losses
// score zero rather than negative; the cumulative score never decreases.
func DayDelta(profit decimal.Decimal, stockoutCount int) float64 {
	delta := 0.0
	if profit.IsPositive() {
		delta += profit.InexactFloat64() * profitShare
	}
	if stockoutCount == 0 {
		delta += noStockoutBonus
	}
	return delta
}

// Grade is a tiered rating of a finished session.
type Grade struct {
	Letter  string `json:"letter"`
	Comment string `json:"comment"`
}

// GradeFor buckets a cumulative score into the final rating tiers.
// Lower bounds are inclusive.
func GradeFor(score float64) Grade {
	switch {
	case score >= 150:
		return Grade{Letter: "S", Comment: "Inventory master. Safety stock and reorder points are second nature."}
	case score >= 100:
		return Grade{Letter: "A", Comment: "Excellent. The reorder point and safety stock concepts landed."}
	case score >= 50:
		return Grade{Letter: "B", Comment: "Solid. A few more sessions will sharpen the ordering decisions."}
	default:
		return Grade{Letter: "C", Comment: "Keep practicing. Watch the reorder points before demand catches you."}
	}
}
