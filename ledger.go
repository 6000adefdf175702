package pnl

import (
	"iter"
	"sort"
)

// Ledger holds the full trade history of one brokerage account.
//
// In a Ledger trades are always in chronological order. Trades on the same
// day keep the order in which they were appended, which is the export file
// order.
type Ledger struct {
	trades []Trade
}

// NewLedger creates a ledger from the given trades.
func NewLedger(trades ...Trade) *Ledger {
	l := &Ledger{trades: make([]Trade, 0, len(trades))}
	l.Append(trades...)
	return l
}

// Append adds trades to the ledger and restores chronological order.
func (l *Ledger) Append(trades ...Trade) {
	l.trades = append(l.trades, trades...)
	l.stableSort()
}

// stableSort sorts the ledger by trade date. The sort is stable, so trades
// on the same day keep their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.trades, func(i, j int) bool {
		return l.trades[i].Date.Before(l.trades[j].Date)
	})
}

// Len returns the number of trades in the ledger.
func (l *Ledger) Len() int { return len(l.trades) }

// Trades iterates over trades in chronological order, keeping only those
// accepted by every filter. With no filters every trade is yielded.
func (l *Ledger) Trades(filters ...func(Trade) bool) iter.Seq2[int, Trade] {
	return func(yield func(int, Trade) bool) {
		for i, t := range l.trades {
			accept := true
			for _, filter := range filters {
				if !filter(t) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, t) {
				return
			}
		}
	}
}

// BySymbol returns a filter that accepts trades in the given symbol.
func BySymbol(symbol string) func(Trade) bool {
	return func(t Trade) bool { return t.Symbol == symbol }
}

// Symbols iterates over the distinct trade symbols in ascending order.
func (l *Ledger) Symbols() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		symbols := make([]string, 0)
		for _, t := range l.trades {
			if _, ok := visited[t.Symbol]; !ok {
				visited[t.Symbol] = struct{}{}
				symbols = append(symbols, t.Symbol)
			}
		}
		sort.Strings(symbols)
		for _, s := range symbols {
			if !yield(s) {
				return
			}
		}
	}
}

// GroupBySymbol partitions the ledger by trade symbol. Every sublist stays in
// chronological order, the order all accounting methods depend on.
func (l *Ledger) GroupBySymbol() map[string][]Trade {
	groups := make(map[string][]Trade)
	for _, t := range l.trades {
		groups[t.Symbol] = append(groups[t.Symbol], t)
	}
	return groups
}

// Instrument returns the resolved instrument traded under the given symbol.
// When any trade in the symbol is an option the option tags win. It returns
// false when the symbol never traded.
func (l *Ledger) Instrument(symbol string) (Instrument, bool) {
	var inst Instrument
	var found bool
	for _, t := range l.trades {
		if t.Symbol != symbol {
			continue
		}
		if !found {
			inst, found = t.Instrument, true
		}
		if t.IsOption {
			return t.Instrument, true
		}
	}
	return inst, found
}

// OldestTradeDate returns the date of the earliest trade in the ledger, or
// the zero date when the ledger is empty.
func (l *Ledger) OldestTradeDate() Date {
	if len(l.trades) == 0 {
		return Date{}
	}
	return l.trades[0].Date
}

// NewestTradeDate returns the date of the latest trade in the ledger, or the
// zero date when the ledger is empty.
func (l *Ledger) NewestTradeDate() Date {
	if len(l.trades) == 0 {
		return Date{}
	}
	return l.trades[len(l.trades)-1].Date
}
