package pnl

import (
	"fmt"
	"math"
)

// Percent represents a percentage value, stored as a float64.
// For example, a value of 5.5 represents 5.5%.
type Percent float64

// Equal returns true if the two percentages are equal within a small tolerance.
func (p Percent) Equal(q Percent) bool {
	return math.Abs(float64(p-q)) < 0.0001
}

// String formats the percentage with two decimal places and a '%' sign.
func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString formats the percentage always showing the sign.
// A zero value is rendered as "-".
func (p Percent) SignedString() string {
	s := fmt.Sprintf("%+.2f%%", float64(p))
	if s == "+0.00%" || s == "-0.00%" {
		return "-"
	}
	return s
}
