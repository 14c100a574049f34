package currency

import "testing"

func TestAmountAdd(t *testing.T) {
	a := Amount{CNY: 10, USD: 1.5, BDT: 100}
	b := Amount{CNY: 5, USD: 0.5, BDT: 200}

	got := a.Add(b)
	want := Amount{CNY: 15, USD: 2, BDT: 300}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestAmountMulQty(t *testing.T) {
	a := Amount{CNY: 2, USD: 0.3, BDT: 25}
	got := a.MulQty(4)
	want := Amount{CNY: 8, USD: 1.2, BDT: 100}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestAmountSubFloorClampsAtZero(t *testing.T) {
	a := Amount{CNY: 5, USD: 1, BDT: 50}
	b := Amount{CNY: 10, USD: 0.5, BDT: 50}

	got := a.SubFloor(b)
	if got.CNY != 0 {
		t.Errorf("expected cny leg clamped to 0, got %v", got.CNY)
	}
	if got.USD != 0.5 {
		t.Errorf("expected usd leg 0.5, got %v", got.USD)
	}
	if got.BDT != 0 {
		t.Errorf("expected bdt leg 0, got %v", got.BDT)
	}
}

func TestAmountIn(t *testing.T) {
	a := Amount{CNY: 1, USD: 2, BDT: 3}
	if a.In(CNY) != 1 || a.In(USD) != 2 || a.In(BDT) != 3 {
		t.Fatalf("unexpected legs: %+v", a)
	}
	if a.In(Code("EUR")) != 0 {
		t.Fatal("unknown code should yield zero")
	}
}

func TestCodeValid(t *testing.T) {
	for _, c := range []Code{CNY, USD, BDT} {
		if !c.Valid() {
			t.Errorf("expected %s to be valid", c)
		}
	}
	if Code("EUR").Valid() {
		t.Error("EUR must not be valid")
	}
	if Code("").Valid() {
		t.Error("empty code must not be valid")
	}
}

func TestNegative(t *testing.T) {
	if (Amount{CNY: 1, USD: 1, BDT: 1}).Negative() {
		t.Error("all-positive amount reported negative")
	}
	if !(Amount{CNY: 1, USD: -0.01, BDT: 1}).Negative() {
		t.Error("negative usd leg not detected")
	}
}
