package pnl

import "fmt"

// DebugFunc receives informational diagnostic messages from a report
// computation: skipped degenerate trades, sells exceeding open lots, options
// without a resolvable parent. It is never required for correctness and may
// be nil.
type DebugFunc func(msg string)

// epsilon is the open quantity below which a position is considered fully
// closed. It absorbs floating point rounding residue left by fractional
// share trades so a phantom position is never reported as open.
var epsilon = Q(0.0001)

// clampPosition reports rounding residue as fully closed.
func clampPosition(q Quantity) Quantity {
	if q.Abs().GreaterThan(epsilon) {
		return q
	}
	return Quantity{}
}

// debugf is the printf flavored diagnostic sink threaded through the
// engines.
type debugf func(format string, args ...any)

// debugSink adapts the optional callback. A nil callback costs nothing.
func debugSink(debug DebugFunc) debugf {
	if debug == nil {
		return func(string, ...any) {}
	}
	return func(format string, args ...any) { debug(fmt.Sprintf(format, args...)) }
}

// scoped prefixes every message with the symbol under computation.
func (d debugf) scoped(symbol string) debugf {
	return func(format string, args ...any) {
		d("%s: "+format, append([]any{symbol}, args...)...)
	}
}

// MethodResult is the outcome of one accounting method for one symbol.
// Report structs carry plain float64; all intermediate arithmetic runs on
// the exact value types.
type MethodResult struct {
	RealizedPnL   float64 `json:"realized_pnl"`
	UnrealizedPnL float64 `json:"unrealized_pnl"`
	TotalPnL      float64 `json:"total_pnl"`
	Position      float64 `json:"position"`
	AvgCostBasis  float64 `json:"avg_cost_basis"`
}

// LotQuote is one open purchase lot quoted in the sale opportunity lists.
type LotQuote struct {
	Price   float64 `json:"price"`
	Date    Date    `json:"date"`
	DaysAgo int     `json:"days_ago"`
}

// SellQuote is one past sale quoted in the recent sells list.
type SellQuote struct {
	Price   float64 `json:"price"`
	Date    Date    `json:"date"`
	DaysAgo int     `json:"days_ago"`
}

// RealResult is the cash flow method outcome, extended with the diagnostics
// downstream sale opportunity heuristics feed on.
type RealResult struct {
	MethodResult
	PercentageReturn     Percent     `json:"percentage_return"`
	LowestOpenBuyPrice   float64     `json:"lowest_open_buy_price"`
	LowestOpenBuyDaysAgo int         `json:"lowest_open_buy_days_ago"`
	RecentLowestBuys     []LotQuote  `json:"recent_lowest_buys,omitempty"`
	RecentSells          []SellQuote `json:"recent_sells,omitempty"`
	TodaysRealizedProfit float64     `json:"todays_realized_profit"`
}

// PositionReport is the complete outcome for one symbol: all four accounting
// methods side by side, the daily metrics, and for stock rows the rollup of
// their option contracts. Reports are constructed fresh on every invocation
// and never mutated across calls.
type PositionReport struct {
	Symbol        string       `json:"symbol"`
	Instrument    Instrument   `json:"instrument"`
	IsOption      bool         `json:"is_option,omitempty"`
	CurrentPrice  float64      `json:"current_price"`
	PreviousClose float64      `json:"previous_close"`
	DailyPnL      float64      `json:"daily_pnl"`
	MadeUpGround  float64      `json:"made_up_ground"`
	Real          RealResult   `json:"real"`
	AvgCost       MethodResult `json:"avg_cost"`
	FIFO          MethodResult `json:"fifo"`
	LIFO          MethodResult `json:"lifo"`

	// Rollup fields. ParentInstrument is derived only for options; the
	// Options aggregates are filled only on stock rows.
	ParentInstrument    string           `json:"parent_instrument,omitempty"`
	OptionsPnL          float64          `json:"options_pnl"`
	OptionsDailyPnL     float64          `json:"options_daily_pnl"`
	OptionsMadeUpGround float64          `json:"options_made_up_ground"`
	OptionsCount        int              `json:"options_count"`
	Options             []PositionReport `json:"options,omitempty"`
}

// PositionRow is the flat export row consumed by the snapshot store. Its
// field names mirror that schema one for one; renaming any of them is a
// breaking change at that boundary.
type PositionRow struct {
	Symbol               string  `json:"symbol"`
	Position             float64 `json:"position"`
	AvgCost              float64 `json:"avg_cost"`
	CurrentValue         float64 `json:"current_value"`
	RealizedPnL          float64 `json:"realized_pnl"`
	UnrealizedPnL        float64 `json:"unrealized_pnl"`
	TotalPnL             float64 `json:"total_pnl"`
	DailyPnL             float64 `json:"daily_pnl"`
	OptionsPnL           float64 `json:"options_pnl"`
	Percentage           float64 `json:"percentage"`
	LowestOpenBuyPrice   float64 `json:"lowest_open_buy_price"`
	LowestOpenBuyDaysAgo int     `json:"lowest_open_buy_days_ago"`
}

// Row flattens the report into its persistence mirror. Position, cost basis
// and profits are drawn from the cash flow method; current value is the
// position valued at the current price.
func (r PositionReport) Row() PositionRow {
	return PositionRow{
		Symbol:               r.Symbol,
		Position:             r.Real.Position,
		AvgCost:              r.Real.AvgCostBasis,
		CurrentValue:         r.CurrentPrice * r.Real.Position,
		RealizedPnL:          r.Real.RealizedPnL,
		UnrealizedPnL:        r.Real.UnrealizedPnL,
		TotalPnL:             r.Real.TotalPnL,
		DailyPnL:             r.DailyPnL,
		OptionsPnL:           r.OptionsPnL,
		Percentage:           float64(r.Real.PercentageReturn),
		LowestOpenBuyPrice:   r.Real.LowestOpenBuyPrice,
		LowestOpenBuyDaysAgo: r.Real.LowestOpenBuyDaysAgo,
	}
}

// PositionReports computes the per symbol report list on the given analysis
// date. It is a pure function of its inputs: identical trades, prices and
// date produce identical output on every call, so it is safe to re-invoke in
// full on every price tick, manual price edit or split adjustment. Missing
// prices quote at zero. The final list is sorted ascending by symbol with
// rolled up options removed from the top level.
func (l *Ledger) PositionReports(on Date, current, previous PriceMap, debug DebugFunc) []PositionReport {
	dbg := debugSink(debug)
	groups := l.GroupBySymbol()

	flat := make([]PositionReport, 0, len(groups))
	for symbol := range l.Symbols() {
		flat = append(flat, positionReport(symbol, groups[symbol], on, current, previous, dbg.scoped(symbol)))
	}
	return rollupOptions(flat, dbg)
}

// positionReport runs the four accounting methods and the daily metrics over
// one symbol's chronological trades.
func positionReport(symbol string, group []Trade, on Date, current, previous PriceMap, dbg debugf) PositionReport {
	// Degenerate records violate the upstream contract; they are narrated
	// and skipped, never fatal.
	trades := make([]Trade, 0, len(group))
	var isOption bool
	var inst Instrument
	for i, t := range group {
		if i == 0 {
			inst = t.Instrument
		}
		if t.IsOption {
			isOption = true
			inst = t.Instrument
		}
		if t.degenerate() {
			dbg("skipping degenerate trade %s (quantity %s, price %s)", t.ID, t.Quantity, t.Price)
			continue
		}
		trades = append(trades, t)
	}

	cur, prev := current.Get(symbol), previous.Get(symbol)

	real := runReal(trades, on, dbg)
	avg := runAverage(trades)
	fifo := runMatched(trades, false, dbg)
	lifo := runMatched(trades, true, dbg)

	report := PositionReport{
		Symbol:        symbol,
		Instrument:    inst,
		IsOption:      isOption,
		CurrentPrice:  cur.AsFloat(),
		PreviousClose: prev.AsFloat(),
		Real:          real.result(cur),
		AvgCost:       avg.result(cur),
		FIFO:          fifo.result(cur),
		LIFO:          lifo.result(cur),
	}
	if isOption {
		report.ParentInstrument = inst.Underlying
	}

	daily, ground := dailyMetrics(clampPosition(avg.shares), cur, prev, real.today)
	report.DailyPnL = daily.AsFloat()
	report.MadeUpGround = ground.AsFloat()
	return report
}
