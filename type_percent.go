package rebalance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a display-oriented percentage value (42.5 means 42.5%).
type Percent float64

// PercentOf converts an allocation fraction (0.425) into a Percent (42.5).
func PercentOf(fraction decimal.Decimal) Percent {
	return Percent(fraction.InexactFloat64() * 100)
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
