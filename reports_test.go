package pnl

import (
	"reflect"
	"sort"
	"strings"
	"testing"
)

func TestPositionReports_SortedBySymbol(t *testing.T) {
	ledger := NewLedger(
		buy(day1, "TSLA", 1, 600),
		buy(day1, "AAPL", 1, 100),
		buy(day1, "MSFT", 1, 300),
	)
	reports := ledger.PositionReports(day2, PriceMap{}, PriceMap{}, nil)

	symbols := make([]string, len(reports))
	for i, r := range reports {
		symbols[i] = r.Symbol
	}
	if !sort.StringsAreSorted(symbols) {
		t.Errorf("PositionReports() symbols = %v, want ascending", symbols)
	}
}

// The report is a pure function of its inputs. Computing it twice, or
// computing it after an unrelated earlier run, must give identical results.
func TestPositionReports_Pure(t *testing.T) {
	ledger := NewLedger(
		buy(day1, "AAPL", 10, 100),
		sell(day2, "AAPL", 5, 120),
		optBuy(day1, aaplCall, aaplCall, 2, 5),
		buy(day1, "TSLA", 3, 600),
	)
	current := prices("AAPL", 110, "TSLA", 650, aaplCall, 6)
	previous := prices("AAPL", 105, "TSLA", 640, aaplCall, 7)

	first := ledger.PositionReports(day3, current, previous, nil)
	second := ledger.PositionReports(day3, current, previous, nil)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("PositionReports() differs across calls:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestPositionReports_MissingPricesQuoteZero(t *testing.T) {
	ledger := NewLedger(buy(day1, "AAPL", 10, 100))
	reports := ledger.PositionReports(day2, PriceMap{}, PriceMap{}, nil)

	if len(reports) != 1 {
		t.Fatalf("PositionReports() = %d rows, want 1", len(reports))
	}
	r := reports[0]
	if r.CurrentPrice != 0 || r.PreviousClose != 0 {
		t.Errorf("prices = %v/%v, want 0/0", r.CurrentPrice, r.PreviousClose)
	}
	// Cash flow: all spent, nothing valued.
	if !near(r.Real.TotalPnL, -1000) {
		t.Errorf("Real.TotalPnL = %v, want -1000", r.Real.TotalPnL)
	}
	if !near(r.DailyPnL, 0) {
		t.Errorf("DailyPnL = %v, want 0", r.DailyPnL)
	}
}

func TestPositionReports_SkipsDegenerateTrades(t *testing.T) {
	ledger := NewLedger(
		buy(day1, "AAPL", 10, 100),
		buy(day2, "AAPL", 0, 100),  // free shares row, no quantity
		sell(day2, "AAPL", 5, -12), // negative price row
	)

	var messages []string
	reports := ledger.PositionReports(day3, prices("AAPL", 110), PriceMap{}, func(msg string) {
		messages = append(messages, msg)
	})

	if len(reports) != 1 {
		t.Fatalf("PositionReports() = %d rows, want 1", len(reports))
	}
	// Only the clean buy was processed.
	if !near(reports[0].Real.Position, 10) {
		t.Errorf("Real.Position = %v, want 10", reports[0].Real.Position)
	}
	skipped := 0
	for _, msg := range messages {
		if strings.Contains(msg, "degenerate") {
			skipped++
		}
	}
	if skipped != 2 {
		t.Errorf("degenerate narrations = %d (%v), want 2", skipped, messages)
	}
}

// All four methods see the same trades and the same current price, so on a
// buy-only history they agree on every figure.
func TestPositionReports_MethodsAgreeOnBuyOnlyHistory(t *testing.T) {
	ledger := NewLedger(
		buy(day1, "AAPL", 10, 100),
		buy(day2, "AAPL", 10, 120),
	)
	reports := ledger.PositionReports(day3, prices("AAPL", 130), PriceMap{}, nil)
	r := reports[0]

	for name, m := range map[string]MethodResult{
		"avg_cost": r.AvgCost,
		"fifo":     r.FIFO,
		"lifo":     r.LIFO,
	} {
		if !near(m.Position, 10+10) {
			t.Errorf("%s Position = %v, want 20", name, m.Position)
		}
		if !near(m.AvgCostBasis, 110) {
			t.Errorf("%s AvgCostBasis = %v, want 110", name, m.AvgCostBasis)
		}
		// (130-110)*20
		if !near(m.UnrealizedPnL, 400) {
			t.Errorf("%s UnrealizedPnL = %v, want 400", name, m.UnrealizedPnL)
		}
		if !near(m.TotalPnL, 400) {
			t.Errorf("%s TotalPnL = %v, want 400", name, m.TotalPnL)
		}
	}

	// The cash flow method agrees on the bottom line.
	if !near(r.Real.TotalPnL, 400) {
		t.Errorf("Real.TotalPnL = %v, want 400", r.Real.TotalPnL)
	}
}

func TestPositionReport_Row(t *testing.T) {
	ledger := NewLedger(
		buy(day1, "AAPL", 10, 100),
		sell(day2, "AAPL", 5, 120),
		optBuy(day1, aaplCall, aaplCall, 1, 5),
	)
	current := prices("AAPL", 110, aaplCall, 6)
	reports := ledger.PositionReports(day3, current, PriceMap{}, nil)
	row := reports[0].Row()

	if row.Symbol != "AAPL" {
		t.Errorf("Symbol = %q, want AAPL", row.Symbol)
	}
	if !near(row.Position, 5) {
		t.Errorf("Position = %v, want 5", row.Position)
	}
	// 5 open shares at 110.
	if !near(row.CurrentValue, 550) {
		t.Errorf("CurrentValue = %v, want 550", row.CurrentValue)
	}
	if !near(row.RealizedPnL, -400) {
		t.Errorf("RealizedPnL = %v, want -400", row.RealizedPnL)
	}
	if !near(row.UnrealizedPnL, 550) {
		t.Errorf("UnrealizedPnL = %v, want 550", row.UnrealizedPnL)
	}
	if !near(row.TotalPnL, 150) {
		t.Errorf("TotalPnL = %v, want 150", row.TotalPnL)
	}
	// Option: -5 spent, one contract open at 6.
	if !near(row.OptionsPnL, 1) {
		t.Errorf("OptionsPnL = %v, want 1", row.OptionsPnL)
	}
	if !near(row.AvgCost, 100) {
		t.Errorf("AvgCost = %v, want 100", row.AvgCost)
	}
	if !near(row.LowestOpenBuyPrice, 100) {
		t.Errorf("LowestOpenBuyPrice = %v, want 100", row.LowestOpenBuyPrice)
	}
	if got, want := row.LowestOpenBuyDaysAgo, day3.Sub(day1); got != want {
		t.Errorf("LowestOpenBuyDaysAgo = %v, want %v", got, want)
	}
}

func TestPositionReports_NilDebugIsSafe(t *testing.T) {
	ledger := NewLedger(
		sell(day1, "AAPL", 5, 50),      // unmatched sell narrates
		buy(day2, "AAPL", 0, 100),      // degenerate narrates
		optBuy(day1, "???", "?", 1, 1), // unresolvable parent narrates
	)
	// Must simply not panic.
	ledger.PositionReports(day2, PriceMap{}, PriceMap{}, nil)
}
