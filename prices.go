package pnl

// PriceMap holds one price per symbol. It is supplied to the engine as a
// read-only snapshot for the duration of one computation; the engine never
// fetches or caches prices itself.
type PriceMap map[string]Money

// Get returns the price for symbol. A symbol with no entry quotes at zero,
// which downstream guards treat as "no market data".
func (p PriceMap) Get(symbol string) Money { return p[symbol] }
