package renderer

import (
	"strings"
	"testing"

	pnl "github.com/kosarinj/robinhood-pnl-tracker-sub001"
)

const renderedCall = "AAPL 6/18/2026 Call $130.00"

func ropt(on pnl.Date, isBuy bool, quantity, price float64) pnl.Trade {
	return pnl.NewTrade("", on, renderedCall, renderedCall, true, isBuy, pnl.Q(quantity), pnl.USD(price))
}

// aaplDrilldown computes the report for a symbol with open lots, a sale on
// the analysis date, and one folded option contract.
func aaplDrilldown(t *testing.T) pnl.PositionReport {
	t.Helper()
	ledger := pnl.NewLedger(
		rbuy(rday1, "AAPL", 10, 100),
		rbuy(rday1.Add(1), "AAPL", 5, 120),
		rsell(rday3, "AAPL", 5, 131),
		ropt(rday1, true, 2, 5),
		ropt(rday1.Add(1), false, 1, 8),
	)
	current := pnl.PriceMap{"AAPL": pnl.USD(110), renderedCall: pnl.USD(6)}
	previous := pnl.PriceMap{"AAPL": pnl.USD(105), renderedCall: pnl.USD(7)}

	reports := ledger.PositionReports(rday3, current, previous, nil)
	for _, r := range reports {
		if r.Symbol == "AAPL" {
			return r
		}
	}
	t.Fatal("no AAPL report")
	return pnl.PositionReport{}
}

func TestSymbolMarkdown(t *testing.T) {
	doc := SymbolMarkdown(aaplDrilldown(t))

	t.Run("title names symbol and kind", func(t *testing.T) {
		if !strings.Contains(doc, "# AAPL (stock)") {
			t.Errorf("missing title in\n%s", doc)
		}
	})

	t.Run("facts lead with the current price", func(t *testing.T) {
		if !strings.Contains(doc, "**$110.00**") {
			t.Errorf("missing bold current price in\n%s", doc)
		}
		if !strings.Contains(doc, "$105.00") {
			t.Errorf("missing previous close in\n%s", doc)
		}
		// Sold 5 at 131 bought at 100, on the analysis date.
		if !strings.Contains(doc, "+$155.00") {
			t.Errorf("missing today's realized in\n%s", doc)
		}
	})

	t.Run("all four methods are tabled", func(t *testing.T) {
		if !strings.Contains(doc, "## Accounting Methods") {
			t.Errorf("missing methods section in\n%s", doc)
		}
		// Padded by the table writer, so match the cell with its spaces.
		for _, m := range pnl.Methods() {
			if !strings.Contains(doc, " "+m.String()+" ") {
				t.Errorf("missing %s row in\n%s", m, doc)
			}
		}
	})

	t.Run("sale opportunity diagnostics are present", func(t *testing.T) {
		if !strings.Contains(doc, "## Lowest Open Buys") {
			t.Errorf("missing lowest open buys in\n%s", doc)
		}
		if !strings.Contains(doc, "$100.00") {
			t.Errorf("missing cheapest open lot in\n%s", doc)
		}
		if !strings.Contains(doc, "## Recent Sells") {
			t.Errorf("missing recent sells in\n%s", doc)
		}
		if !strings.Contains(doc, "$131.00") {
			t.Errorf("missing sale price in\n%s", doc)
		}
	})

	t.Run("folded contracts are listed", func(t *testing.T) {
		if !strings.Contains(doc, "## Options") {
			t.Errorf("missing options section in\n%s", doc)
		}
		// Bought 2 at 5, sold 1 at 8, marked at 6 against a 7 close.
		if !strings.Contains(doc, "Call $130.00: total +$4.00, daily -$1.00") {
			t.Errorf("missing contract line in\n%s", doc)
		}
	})
}

func TestSymbolMarkdown_QuietSections(t *testing.T) {
	ledger := pnl.NewLedger(rbuy(rday1, "TSLA", 2, 300))
	reports := ledger.PositionReports(rday3, pnl.PriceMap{"TSLA": pnl.USD(310)}, pnl.PriceMap{"TSLA": pnl.USD(305)}, nil)

	doc := SymbolMarkdown(reports[0])
	if !strings.Contains(doc, "## Lowest Open Buys") {
		t.Errorf("open lots should always be listed in\n%s", doc)
	}
	for _, absent := range []string{"## Recent Sells", "## Options"} {
		if strings.Contains(doc, absent) {
			t.Errorf("unexpected %s section in\n%s", absent, doc)
		}
	}
}
