package pipeline

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSubmit_RejectsBadQuantities(t *testing.T) {
	p := New()

	if err := p.Submit("WATER", 0, 3, decimal.Zero); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("zero quantity: got %v, want ErrInvalidQuantity", err)
	}
	if err := p.Submit("WATER", -5, 3, decimal.Zero); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("negative quantity: got %v, want ErrInvalidQuantity", err)
	}
	if len(p.All()) != 0 {
		t.Error("rejected submissions must leave the pipeline empty")
	}
}

func TestSubmit_CapacityOnePerSKU(t *testing.T) {
	p := New()

	if err := p.Submit("WATER", 50, 3, decimal.NewFromInt(50)); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if err := p.Submit("WATER", 30, 3, decimal.NewFromInt(30)); !errors.Is(err, ErrOrderInTransit) {
		t.Errorf("second submit: got %v, want ErrOrderInTransit", err)
	}

	// the original order is untouched
	o, ok := p.Outstanding("WATER")
	if !ok || o.Quantity != 50 {
		t.Errorf("outstanding order corrupted: %+v ok=%v", o, ok)
	}

	// a different SKU is unaffected
	if err := p.Submit("MILK", 10, 2, decimal.NewFromInt(70)); err != nil {
		t.Errorf("other SKU submit failed: %v", err)
	}
}

func TestAdvanceOneDay_OrderLifecycle(t *testing.T) {
	p := New()
	const leadTime = 3

	if err := p.Submit("WATER", 100, leadTime, decimal.NewFromInt(100)); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	// L-1 days: still outstanding, nothing landed
	for day := 1; day < leadTime; day++ {
		if arrived := p.AdvanceOneDay(); len(arrived) != 0 {
			t.Fatalf("day %d: order landed early: %+v", day, arrived)
		}
	}
	if o, ok := p.Outstanding("WATER"); !ok || o.DaysRemaining != 1 {
		t.Fatalf("after L-1 days: outstanding=%v remaining=%d, want remaining 1", ok, o.DaysRemaining)
	}

	// day L: lands exactly once with the full quantity
	arrived := p.AdvanceOneDay()
	if len(arrived) != 1 || arrived[0].SKU != "WATER" || arrived[0].Quantity != 100 {
		t.Fatalf("day %d arrivals = %+v, want one WATER x100", leadTime, arrived)
	}
	if _, ok := p.Outstanding("WATER"); ok {
		t.Error("landed order still outstanding")
	}

	// further days produce nothing; the credit happened exactly once
	if arrived := p.AdvanceOneDay(); len(arrived) != 0 {
		t.Errorf("extra arrivals after landing: %+v", arrived)
	}
}

func TestAdvanceOneDay_ZeroLeadTime(t *testing.T) {
	p := New()
	if err := p.Submit("MILK", 10, 0, decimal.NewFromInt(70)); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	// a zero-lead order still waits for the next day boundary
	arrived := p.AdvanceOneDay()
	if len(arrived) != 1 || arrived[0].Quantity != 10 {
		t.Fatalf("arrivals = %+v, want one MILK x10", arrived)
	}
}

func TestAll_SortedBySKU(t *testing.T) {
	p := New()
	_ = p.Submit("MILK", 1, 2, decimal.Zero.Add(decimal.NewFromInt(7)))
	_ = p.Submit("BREAD", 2, 5, decimal.NewFromInt(8))
	_ = p.Submit("WATER", 3, 3, decimal.NewFromInt(3))

	all := p.All()
	if len(all) != 3 {
		t.Fatalf("got %d orders, want 3", len(all))
	}
	want := []string{"BREAD", "MILK", "WATER"}
	for i, o := range all {
		if o.SKU != want[i] {
			t.Errorf("position %d: got %s, want %s", i, o.SKU, want[i])
		}
	}
}
