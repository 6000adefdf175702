package renderer

import (
	"strings"
	"testing"
	"time"

	pnl "github.com/kosarinj/robinhood-pnl-tracker-sub001"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	rday1 = pnl.NewDate(2025, time.June, 2)
	rday3 = pnl.NewDate(2025, time.June, 4)
)

func rbuy(on pnl.Date, symbol string, quantity, price float64) pnl.Trade {
	return pnl.NewTrade("", on, symbol, "", false, true, pnl.Q(quantity), pnl.USD(price))
}

func rsell(on pnl.Date, symbol string, quantity, price float64) pnl.Trade {
	return pnl.NewTrade("", on, symbol, "", false, false, pnl.Q(quantity), pnl.USD(price))
}

// sampleReports runs the real engine over a small account: a live AAPL
// position, a dead round trip, and a decline day saved by selling.
func sampleReports() ([]pnl.PositionReport, pnl.Date) {
	ledger := pnl.NewLedger(
		rbuy(rday1, "AAPL", 10, 100),
		rbuy(rday1, "DEAD", 1, 100),
		rsell(rday1.Add(1), "DEAD", 1, 100),
		rbuy(rday1, "CMG", 10, 80),
		rsell(rday3, "CMG", 10, 95),
	)
	current := pnl.PriceMap{"AAPL": pnl.USD(110), "CMG": pnl.USD(90)}
	previous := pnl.PriceMap{"AAPL": pnl.USD(105), "CMG": pnl.USD(95)}
	return ledger.PositionReports(rday3, current, previous, nil), rday3
}

func TestPositionsMarkdown(t *testing.T) {
	reports, on := sampleReports()
	doc := PositionsMarkdown(reports, on)

	t.Run("title names the analysis date", func(t *testing.T) {
		if !strings.Contains(doc, "# Position Report on 2025-06-04") {
			t.Errorf("missing title in\n%s", doc)
		}
	})

	t.Run("live position rows are rendered", func(t *testing.T) {
		if !strings.Contains(doc, "| AAPL | 10 | $100.00 | -$1,000.00 | +$1,100.00 | +$100.00 | +$50.00 | - | 0 |") {
			t.Errorf("missing AAPL row in\n%s", doc)
		}
	})

	t.Run("dead rows are skipped but counted", func(t *testing.T) {
		if strings.Contains(doc, "DEAD") {
			t.Errorf("dead row leaked into\n%s", doc)
		}
		// AAPL 100 + DEAD 0 + CMG 150.
		if !strings.Contains(doc, "**+$250.00**") {
			t.Errorf("missing grand total in\n%s", doc)
		}
	})

	t.Run("made up ground section lists the saved day", func(t *testing.T) {
		if !strings.Contains(doc, "## Made Up Ground") {
			t.Errorf("missing made up ground section in\n%s", doc)
		}
		// Sold 10 at 95 bought at 80 on a day the price fell to 90.
		if !strings.Contains(doc, "| CMG | +$150.00 |") {
			t.Errorf("missing CMG ground row in\n%s", doc)
		}
	})
}

// The document must stay structurally valid markdown: one title, and the
// made up ground section only when there is something to report.
func TestPositionsMarkdown_Structure(t *testing.T) {
	reports, on := sampleReports()
	content := []byte(PositionsMarkdown(reports, on))

	root := goldmark.DefaultParser().Parse(text.NewReader(content))
	var h1, h2 int
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			switch h.Level {
			case 1:
				h1++
			case 2:
				h2++
			}
		}
		return ast.WalkContinue, nil
	})

	if h1 != 1 {
		t.Errorf("document has %d titles, want 1", h1)
	}
	if h2 != 1 {
		t.Errorf("document has %d sections, want only made up ground", h2)
	}
}

func TestPositionsMarkdown_NoGroundSection(t *testing.T) {
	ledger := pnl.NewLedger(rbuy(rday1, "AAPL", 10, 100))
	reports := ledger.PositionReports(rday3, pnl.PriceMap{"AAPL": pnl.USD(110)}, pnl.PriceMap{"AAPL": pnl.USD(105)}, nil)

	doc := PositionsMarkdown(reports, rday3)
	if strings.Contains(doc, "Made Up Ground") {
		t.Errorf("unexpected made up ground section in\n%s", doc)
	}
}
