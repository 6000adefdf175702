package pnl

// AdjustSplits applies per symbol split ratios to a trade history:
// price' = price / ratio and quantity' = quantity * ratio, so each trade's
// notional is preserved. The adjustment covers every historical trade of a
// ratioed symbol and must run before the engine; the engine itself has no
// concept of splits. The input slice is never mutated; a ratio of one, or a
// ratio at or below zero, leaves the symbol untouched.
func AdjustSplits(trades []Trade, ratios map[string]float64) []Trade {
	adjusted := make([]Trade, len(trades))
	copy(adjusted, trades)
	for i, t := range adjusted {
		ratio, ok := ratios[t.Symbol]
		if !ok || ratio <= 0 || ratio == 1 {
			continue
		}
		r := Q(ratio)
		adjusted[i].Quantity = t.Quantity.Mul(r)
		adjusted[i].Price = t.Price.Div(r)
	}
	return adjusted
}
