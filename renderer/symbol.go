package renderer

import (
	"bytes"
	"fmt"

	pnl "github.com/kosarinj/robinhood-pnl-tracker-sub001"
	md "github.com/nao1215/markdown"
)

// SymbolMarkdown renders the drill down for one symbol: the four accounting
// methods side by side, the sale opportunity diagnostics of the cash flow
// method, and the option contracts rolled into the row.
func SymbolMarkdown(r pnl.PositionReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s (%s)", r.Symbol, r.Instrument.Kind))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Current Price"),
			md.Bold(usd(r.CurrentPrice)),
		},
		Rows: [][]string{
			{"Previous Close", usd(r.PreviousClose)},
			{"Daily P&L", signed(r.DailyPnL)},
			{"Made Up Ground", signed(r.MadeUpGround)},
			{"Today's Realized", signed(r.Real.TodaysRealizedProfit)},
			{"Return", r.Real.PercentageReturn.SignedString()},
		},
	})

	doc.H2("Accounting Methods")
	methods := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Method", "Position", "Avg Cost", "Realized", "Unrealized", "Total"},
	}
	for _, row := range []struct {
		method pnl.Method
		result pnl.MethodResult
	}{
		{pnl.Real, r.Real.MethodResult},
		{pnl.AverageCost, r.AvgCost},
		{pnl.FIFO, r.FIFO},
		{pnl.LIFO, r.LIFO},
	} {
		methods.Rows = append(methods.Rows, []string{
			row.method.String(),
			qty(row.result.Position),
			usd(row.result.AvgCostBasis),
			signed(row.result.RealizedPnL),
			signed(row.result.UnrealizedPnL),
			signed(row.result.TotalPnL),
		})
	}
	doc.Table(methods)

	if len(r.Real.RecentLowestBuys) > 0 {
		doc.H2("Lowest Open Buys")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignRight,
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"Price", "Date", "Days Ago"},
		}
		for _, q := range r.Real.RecentLowestBuys {
			table.Rows = append(table.Rows, []string{
				usd(q.Price),
				q.Date.String(),
				fmt.Sprintf("%d", q.DaysAgo),
			})
		}
		doc.Table(table)
	}

	if len(r.Real.RecentSells) > 0 {
		doc.H2("Recent Sells")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignRight,
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"Price", "Date", "Days Ago"},
		}
		for _, q := range r.Real.RecentSells {
			table.Rows = append(table.Rows, []string{
				usd(q.Price),
				q.Date.String(),
				fmt.Sprintf("%d", q.DaysAgo),
			})
		}
		doc.Table(table)
	}

	if r.OptionsCount > 0 {
		doc.H2("Options")
		var contracts []string
		for _, opt := range r.Options {
			contracts = append(contracts, fmt.Sprintf("%s: total %s, daily %s",
				opt.Symbol, signed(opt.Real.TotalPnL), signed(opt.DailyPnL)))
		}
		doc.OrderedList(contracts...)
	}

	return doc.String()
}
