package pnl

// realBook accumulates the cash flow method over one symbol's trades.
// Realized profit is not matched per lot: it is the aggregate of all sale
// proceeds minus all purchase costs. A FIFO queue is still maintained, but
// only to derive a display cost basis, the lowest open buy diagnostics and
// the profit realized by today's sells.
type realBook struct {
	on Date // analysis date, "today" for the day granular diagnostics

	realized Money    // sale proceeds minus purchase costs
	buyTotal Money    // every purchase notional, for the percentage return
	bought   Quantity // every share ever bought
	sold     Quantity // every share ever sold
	open     lots     // FIFO queue of open purchases
	today    Money    // realized by sells dated on the analysis day
	sells    []Trade  // all sells in chronological order
	dbg      debugf
}

// runReal replays the trades through a cash flow book.
func runReal(trades []Trade, on Date, dbg debugf) *realBook {
	b := &realBook{on: on, dbg: dbg}
	for _, t := range trades {
		b.process(t)
	}
	return b
}

func (b *realBook) process(t Trade) {
	notional := t.Notional()
	if t.IsBuy {
		b.realized = b.realized.Sub(notional)
		b.buyTotal = b.buyTotal.Add(notional)
		b.bought = b.bought.Add(t.Quantity)
		b.open = b.open.buy(t.Date, t.Quantity, t.Price)
		return
	}

	b.realized = b.realized.Add(notional)
	b.sold = b.sold.Add(t.Quantity)
	b.sells = append(b.sells, t)

	if open := b.open.position(); t.Quantity.GreaterThan(open) {
		b.dbg("sell of %s on %s exceeds open lots %s", t.Quantity, t.Date, open)
	}
	var gain Money
	b.open, gain = b.open.sell(t.Quantity, t.Price, false)
	if t.Date == b.on {
		b.today = b.today.Add(gain)
	}
}

// result values the book at the current price. The purchase costs are
// already fully absorbed into the negative side of realized, so the
// unrealized part is simply the open position at the current price and
// total = realized + currentPrice * position holds for every trade
// sequence.
func (b *realBook) result(current Money) RealResult {
	net := b.bought.Sub(b.sold)
	if diff := net.Sub(b.open.position()).Abs(); diff.GreaterThan(epsilon) {
		b.dbg("open lots total %s diverges from running position %s", b.open.position(), net)
	}
	position := clampPosition(net)

	var unrealized Money
	if !position.IsZero() {
		unrealized = current.Mul(position)
	}
	total := b.realized.Add(unrealized)

	r := RealResult{
		MethodResult: MethodResult{
			RealizedPnL:   b.realized.AsFloat(),
			UnrealizedPnL: unrealized.AsFloat(),
			TotalPnL:      total.AsFloat(),
			Position:      position.AsFloat(),
			AvgCostBasis:  b.open.avgCost().AsFloat(),
		},
		TodaysRealizedProfit: b.today.AsFloat(),
	}

	// The return is relative to everything ever spent on the symbol, and
	// zero when nothing was bought (a position sold out of a pre-existing
	// holding).
	if b.buyTotal.IsPositive() {
		r.PercentageReturn = Percent(total.AsFloat() / b.buyTotal.AsFloat() * 100)
	}

	if low, ok := b.open.lowest(); ok {
		r.LowestOpenBuyPrice = low.Price.AsFloat()
		r.LowestOpenBuyDaysAgo = b.on.Sub(low.Date)
	}
	for _, open := range b.open.sortedByPrice() {
		if len(r.RecentLowestBuys) == maxQuotes {
			break
		}
		r.RecentLowestBuys = append(r.RecentLowestBuys, LotQuote{
			Price:   open.Price.AsFloat(),
			Date:    open.Date,
			DaysAgo: b.on.Sub(open.Date),
		})
	}
	for i := len(b.sells) - 1; i >= 0 && len(r.RecentSells) < maxQuotes; i-- {
		s := b.sells[i]
		r.RecentSells = append(r.RecentSells, SellQuote{
			Price:   s.Price.AsFloat(),
			Date:    s.Date,
			DaysAgo: b.on.Sub(s.Date),
		})
	}
	return r
}

// maxQuotes bounds the sale opportunity lists.
const maxQuotes = 10
