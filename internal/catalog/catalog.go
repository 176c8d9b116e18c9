package catalog

import (
	"github.com/shopspring/decimal"
)

// SKU holds the immutable reference data for one stocked item.
type SKU struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Icon              string          `json:"icon,omitempty"`
	Price             decimal.Decimal `json:"price"`
	Cost              decimal.Decimal `json:"cost"`
	BaseDailyDemand   int             `json:"-"` // hidden driver behind the simulator's draws
	LeadTimeDays      int             `json:"lead_time_days"`
	OrderIntervalDays int             `json:"order_interval_days"`
}

// Margin returns the gross margin as a percentage of the selling price.
func (s SKU) Margin() float64 {
	if s.Price.IsZero() {
		return 0
	}
	return s.Price.Sub(s.Cost).Div(s.Price).InexactFloat64() * 100
}

// DefaultCatalog returns the three-SKU convenience store assortment.
func DefaultCatalog() []SKU {
	return []SKU{
		{
			ID:                "WATER",
			Name:              "Mineral Water",
			Icon:              "💧",
			Price:             decimal.NewFromFloat(3.0),
			Cost:              decimal.NewFromFloat(1.0),
			BaseDailyDemand:   30,
			LeadTimeDays:      3,
			OrderIntervalDays: 3,
		},
		{
			ID:                "BREAD",
			Name:              "Bread",
			Icon:              "🍞",
			Price:             decimal.NewFromFloat(8.0),
			Cost:              decimal.NewFromFloat(4.0),
			BaseDailyDemand:   20,
			LeadTimeDays:      5,
			OrderIntervalDays: 5,
		},
		{
			ID:                "MILK",
			Name:              "Milk",
			Icon:              "🥛",
			Price:             decimal.NewFromFloat(12.0),
			Cost:              decimal.NewFromFloat(7.0),
			BaseDailyDemand:   15,
			LeadTimeDays:      2,
			OrderIntervalDays: 5,
		},
	}
}

// SeedStates returns the opening inventory positions: stock on hand plus a
// seeded week of sales history per SKU. WATER sells steadily, BREAD swings
// hard day to day, MILK barely moves.
func SeedStates() map[string]*State {
	return map[string]*State{
		"WATER": {OnHand: 120, History: []int{28, 32, 30, 35, 29, 31, 33}},
		"BREAD": {OnHand: 60, History: []int{12, 28, 15, 35, 10, 30, 25}},
		"MILK":  {OnHand: 50, History: []int{14, 16, 15, 13, 17, 15, 16}},
	}
}
