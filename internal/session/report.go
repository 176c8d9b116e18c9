package session

import (
	"github.com/shopspring/decimal"
)

// StockoutEvent records unmet demand for one SKU on one day.
type StockoutEvent struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Shortage    int             `json:"shortage"`
	LostRevenue decimal.Decimal `json:"lost_revenue"`
}

// SKUDayResult is one SKU's slice of a trading day.
type SKUDayResult struct {
	Demand      int             `json:"demand"`
	Sales       int             `json:"sales"`
	Revenue     decimal.Decimal `json:"revenue"`
	Profit      decimal.Decimal `json:"profit"`
	EndingStock int             `json:"ending_stock"` // before that evening's arrivals
}

// DailyReport is the immutable record of one simulated day, appended to
// the session's report log and never modified afterwards.
type DailyReport struct {
	Day          int                     `json:"day"`
	Results      map[string]SKUDayResult `json:"results"`
	TotalRevenue decimal.Decimal         `json:"total_revenue"`
	TotalCost    decimal.Decimal         `json:"total_cost"`
	Profit       decimal.Decimal         `json:"profit"`
	Stockouts    []StockoutEvent         `json:"stockouts,omitempty"`
	Cash         decimal.Decimal         `json:"cash"`
	ScoreDelta   float64                 `json:"score_delta"`
}
