package currency

// Code identifies one of the settlement currencies supported by the store.
type Code string

const (
	CNY Code = "CNY"
	USD Code = "USD"
	BDT Code = "BDT"
)

// Valid reports whether the code is one of the supported currencies.
func (c Code) Valid() bool {
	switch c {
	case CNY, USD, BDT:
		return true
	}
	return false
}

// Amount carries a price in all three settlement currencies at once.
// The legs are independent; nothing enforces a conversion rate between them.
type Amount struct {
	CNY float64 `json:"cny" bson:"cny"`
	USD float64 `json:"usd" bson:"usd"`
	BDT float64 `json:"bdt" bson:"bdt"`
}

// Add returns the per-leg sum of a and b.
func (a Amount) Add(b Amount) Amount {
	return Amount{
		CNY: a.CNY + b.CNY,
		USD: a.USD + b.USD,
		BDT: a.BDT + b.BDT,
	}
}

// MulQty scales every leg by a line quantity.
func (a Amount) MulQty(qty int) Amount {
	q := float64(qty)
	return Amount{
		CNY: a.CNY * q,
		USD: a.USD * q,
		BDT: a.BDT * q,
	}
}

// SubFloor subtracts b from a per leg, clamping each leg at zero.
func (a Amount) SubFloor(b Amount) Amount {
	out := Amount{
		CNY: a.CNY - b.CNY,
		USD: a.USD - b.USD,
		BDT: a.BDT - b.BDT,
	}
	if out.CNY < 0 {
		out.CNY = 0
	}
	if out.USD < 0 {
		out.USD = 0
	}
	if out.BDT < 0 {
		out.BDT = 0
	}
	return out
}

// In returns the leg for the given currency code. Unknown codes yield zero.
func (a Amount) In(code Code) float64 {
	switch code {
	case CNY:
		return a.CNY
	case USD:
		return a.USD
	case BDT:
		return a.BDT
	}
	return 0
}

// IsZero reports whether every leg is exactly zero.
func (a Amount) IsZero() bool {
	return a.CNY == 0 && a.USD == 0 && a.BDT == 0
}

// Negative reports whether any leg is below zero.
func (a Amount) Negative() bool {
	return a.CNY < 0 || a.USD < 0 || a.BDT < 0
}
