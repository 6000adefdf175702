package pnl

// matchedBook accumulates the state of a lot matching method (FIFO or LIFO)
// over one symbol's trades. The open lot collection is owned by this book
// alone and discarded with it.
type matchedBook struct {
	newestFirst bool
	open        lots
	realized    Money
	dbg         debugf
}

// runMatched replays the trades through a lot matching book. With
// newestFirst false sells consume the oldest open lot first (FIFO),
// otherwise the newest (LIFO).
func runMatched(trades []Trade, newestFirst bool, dbg debugf) *matchedBook {
	b := &matchedBook{newestFirst: newestFirst, dbg: dbg}
	for _, t := range trades {
		b.process(t)
	}
	return b
}

func (b *matchedBook) process(t Trade) {
	if t.IsBuy {
		b.open = b.open.buy(t.Date, t.Quantity, t.Price)
		return
	}
	if open := b.open.position(); t.Quantity.GreaterThan(open) {
		b.dbg("sell of %s on %s exceeds open lots %s", t.Quantity, t.Date, open)
	}
	var gain Money
	b.open, gain = b.open.sell(t.Quantity, t.Price, b.newestFirst)
	b.realized = b.realized.Add(gain)
}

// result values the remaining lots at the current price. Unrealized profit
// is computed only when the open position exceeds epsilon.
func (b *matchedBook) result(current Money) MethodResult {
	position := clampPosition(b.open.position())
	avgCost := b.open.avgCost()

	var unrealized Money
	if position.IsPositive() {
		unrealized = current.Sub(avgCost).Mul(position)
	}
	total := b.realized.Add(unrealized)

	return MethodResult{
		RealizedPnL:   b.realized.AsFloat(),
		UnrealizedPnL: unrealized.AsFloat(),
		TotalPnL:      total.AsFloat(),
		Position:      position.AsFloat(),
		AvgCostBasis:  avgCost.AsFloat(),
	}
}
