package order

import (
	"fmt"
	"math/rand"
	"time"
)

// NewOrderID builds a human-readable order id like BB-ORD-28-08-26-0042.
// The 4-digit suffix is random, so a date-level collision is possible; the
// repository enforces a unique index on orderId and callers retry with a
// fresh id on a duplicate-key failure.
func NewOrderID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-ORD-%02d-%02d-%02d-%04d",
		prefix, now.Day(), int(now.Month()), now.Year()%100, rand.Intn(10000))
}
