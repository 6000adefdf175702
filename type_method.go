package pnl

import "fmt"

// Method identifies an accounting convention used to compute realized and
// unrealized profit for a position.
type Method int

const (
	// Real accounts on raw cash flow: realized profit is the difference
	// between all sale proceeds and all purchase costs, and the remaining
	// position is valued at the current price.
	Real Method = iota
	// AverageCost maintains a running weighted average cost per share.
	AverageCost
	// FIFO matches each sale against the oldest open purchase lots first.
	FIFO
	// LIFO matches each sale against the newest open purchase lots first.
	LIFO
)

// Methods returns all accounting methods in canonical order.
func Methods() []Method { return []Method{Real, AverageCost, FIFO, LIFO} }

// String returns the name of the method.
func (m Method) String() string {
	switch m {
	case Real:
		return "real"
	case AverageCost:
		return "average"
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	}
	return "unknown"
}

// ParseMethod parses a method name as returned by String.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "real":
		return Real, nil
	case "average":
		return AverageCost, nil
	case "fifo":
		return FIFO, nil
	case "lifo":
		return LIFO, nil
	}
	return 0, fmt.Errorf("unknown accounting method: %q", s)
}
