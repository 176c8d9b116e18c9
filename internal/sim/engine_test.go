package sim

import (
	"testing"

	"github.com/shopspring/decimal"

	"stocksim/internal/catalog"
	"stocksim/internal/session"
)

func newTestSession() *session.Session {
	return session.New(decimal.NewFromInt(10000))
}

// fixNoise pins the demand multiplier so draws become deterministic.
func fixNoise(e *Engine, u float64) {
	e.noise = func() float64 { return u }
}

func TestRunDay_FixedNoiseStockout(t *testing.T) {
	s := newTestSession()
	e := NewSeededEngine(1)
	fixNoise(e, 1.0)

	// WATER: base demand 30, only 20 on the shelf
	s.State("WATER").OnHand = 20

	report := e.RunDay(s)

	water := report.Results["WATER"]
	if water.Demand != 30 {
		t.Fatalf("demand = %d, want 30 with noise pinned at 1.0", water.Demand)
	}
	if water.Sales != 20 {
		t.Errorf("sales = %d, want 20 (capped by stock)", water.Sales)
	}
	if water.EndingStock != 0 {
		t.Errorf("ending stock = %d, want 0", water.EndingStock)
	}

	if len(report.Stockouts) != 1 {
		t.Fatalf("stockouts = %+v, want exactly one (WATER)", report.Stockouts)
	}
	so := report.Stockouts[0]
	if so.SKU != "WATER" || so.Shortage != 10 {
		t.Errorf("stockout = %+v, want WATER shortage 10", so)
	}
	// 10 units x price 3.0
	if !so.LostRevenue.Equal(decimal.NewFromInt(30)) {
		t.Errorf("lost revenue = %s, want 30", so.LostRevenue)
	}

	// one stockout anywhere forfeits the whole +50 bonus
	wantDelta := report.Profit.InexactFloat64() * 0.1
	if diff := report.ScoreDelta - wantDelta; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("score delta = %f, want %f (profit share only)", report.ScoreDelta, wantDelta)
	}
}

func TestRunDay_NoStockoutBonus(t *testing.T) {
	s := newTestSession()
	e := NewSeededEngine(1)
	fixNoise(e, 1.0)

	report := e.RunDay(s)

	if len(report.Stockouts) != 0 {
		t.Fatalf("seeded shelves should cover base demand, got stockouts %+v", report.Stockouts)
	}

	// WATER 30x(3-1) + BREAD 20x(8-4) + MILK 15x(12-7) = 60+80+75 = 215
	if !report.Profit.Equal(decimal.NewFromInt(215)) {
		t.Errorf("profit = %s, want 215", report.Profit)
	}
	want := 215*0.1 + 50
	if diff := report.ScoreDelta - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("score delta = %f, want %f", report.ScoreDelta, want)
	}
	if !s.Cash.Equal(decimal.NewFromInt(10215)) {
		t.Errorf("cash = %s, want 10215 (profit credited)", s.Cash)
	}
}

func TestRunDay_UpdatesHistoryAndClock(t *testing.T) {
	s := newTestSession()
	e := NewSeededEngine(42)

	before := make([]int, len(s.State("WATER").History))
	copy(before, s.State("WATER").History)

	report := e.RunDay(s)

	st := s.State("WATER")
	if len(st.History) != catalog.HistoryWindow {
		t.Fatalf("history length = %d, want %d", len(st.History), catalog.HistoryWindow)
	}
	if st.History[0] != before[1] {
		t.Error("oldest history entry was not evicted")
	}
	if st.History[len(st.History)-1] != report.Results["WATER"].Sales {
		t.Error("newest history entry is not the day's fulfilled sales")
	}
	if s.Day != 2 || report.Day != 1 {
		t.Errorf("clock: session day %d report day %d, want 2 and 1", s.Day, report.Day)
	}
}

func TestRunDay_NotIdempotent(t *testing.T) {
	s := newTestSession()
	e := NewSeededEngine(7)

	stockBefore := s.State("WATER").OnHand + s.State("BREAD").OnHand + s.State("MILK").OnHand

	e.RunDay(s)
	mid := s.State("WATER").OnHand + s.State("BREAD").OnHand + s.State("MILK").OnHand
	e.RunDay(s)
	after := s.State("WATER").OnHand + s.State("BREAD").OnHand + s.State("MILK").OnHand

	if !(after < mid && mid < stockBefore) {
		t.Errorf("stock must strictly decrease each day: %d -> %d -> %d", stockBefore, mid, after)
	}
	if len(s.Reports) != 2 {
		t.Fatalf("reports = %d, want 2 distinct entries", len(s.Reports))
	}
	if s.Reports[0].Day == s.Reports[1].Day {
		t.Error("both reports carry the same day number")
	}
}

func TestRunDay_SeededRunsReproduce(t *testing.T) {
	run := func() []session.DailyReport {
		s := newTestSession()
		e := NewSeededEngine(99)
		for i := 0; i < 5; i++ {
			e.RunDay(s)
		}
		return s.Reports
	}

	first := run()
	second := run()

	for i := range first {
		a, b := first[i], second[i]
		for id := range a.Results {
			if a.Results[id].Demand != b.Results[id].Demand {
				t.Fatalf("day %d %s: demand diverged %d vs %d", i+1, id, a.Results[id].Demand, b.Results[id].Demand)
			}
		}
		if !a.Profit.Equal(b.Profit) {
			t.Fatalf("day %d: profit diverged %s vs %s", i+1, a.Profit, b.Profit)
		}
	}
}

func TestRunDay_LandsPendingOrders(t *testing.T) {
	s := newTestSession()
	e := NewSeededEngine(3)
	fixNoise(e, 1.0)

	// MILK has a 2-day lead time
	if _, err := s.SubmitOrders(map[string]int{"MILK": 40}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	e.RunDay(s)
	if _, ok := s.Pipeline.Outstanding("MILK"); !ok {
		t.Fatal("order landed a day early")
	}

	// Day of arrival: the day's demand (15) sells first, then 40 land.
	stockBefore := s.State("MILK").OnHand
	report := e.RunDay(s)

	if _, ok := s.Pipeline.Outstanding("MILK"); ok {
		t.Error("order still outstanding after its lead time elapsed")
	}
	wantStock := stockBefore - report.Results["MILK"].Sales + 40
	if got := s.State("MILK").OnHand; got != wantStock {
		t.Errorf("MILK stock = %d, want %d (sales out, arrival in)", got, wantStock)
	}
	// arrivals land after the report snapshots ending stock
	if report.Results["MILK"].EndingStock != stockBefore-report.Results["MILK"].Sales {
		t.Errorf("report ending stock %d should exclude the evening arrival", report.Results["MILK"].EndingStock)
	}
}

func TestRunDay_DemandFloor(t *testing.T) {
	s := newTestSession()
	e := NewSeededEngine(5)
	// noise low enough to push rounded demand to zero for a small base
	fixNoise(e, 0.0)

	report := e.RunDay(s)
	for id, r := range report.Results {
		if r.Demand < 1 {
			t.Errorf("%s: demand %d below the floor of 1", id, r.Demand)
		}
	}
}
