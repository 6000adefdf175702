package renderer

import (
	"fmt"
	"io"
	"strings"

	pnl "github.com/kosarinj/robinhood-pnl-tracker-sub001"
)

// PositionsMarkdown renders the full position list as a markdown document:
// one row per symbol with the cash flow figures, the daily metrics and the
// options rollup. Rows with no position and no profit are skipped to keep
// the table readable.
func PositionsMarkdown(reports []pnl.PositionReport, on pnl.Date) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Position Report on %s\n\n", on)

	fmt.Fprintln(&b, "| Symbol | Position | Avg Cost | Realized | Unrealized | Total | Daily | Options P&L | Opts |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|---:|---:|")

	var totalPnL, totalDaily, totalOptions float64
	for _, r := range reports {
		totalPnL += r.Real.TotalPnL
		totalDaily += r.DailyPnL
		totalOptions += r.OptionsPnL

		if r.Real.Position == 0 && r.Real.TotalPnL == 0 && r.DailyPnL == 0 && r.OptionsCount == 0 {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %d |\n",
			r.Symbol,
			qty(r.Real.Position),
			usd(r.Real.AvgCostBasis),
			signed(r.Real.RealizedPnL),
			signed(r.Real.UnrealizedPnL),
			signed(r.Real.TotalPnL),
			signed(r.DailyPnL),
			signed(r.OptionsPnL),
			r.OptionsCount,
		)
	}
	fmt.Fprintf(&b, "| **%s** | | | | | **%s** | **%s** | **%s** | |\n",
		"Total",
		signed(totalPnL),
		signed(totalDaily),
		signed(totalOptions),
	)

	ConditionalBlock(&b, func(w io.Writer) bool {
		printed := false
		for _, r := range reports {
			ground := r.MadeUpGround + r.OptionsMadeUpGround
			if ground <= 0 {
				continue
			}
			if !printed {
				fmt.Fprint(w, "\n## Made Up Ground\n\n")
				fmt.Fprintln(w, "Symbols whose realized trading more than offset today's price decline.")
				fmt.Fprintln(w)
				fmt.Fprintln(w, "| Symbol | Made Up |")
				fmt.Fprintln(w, "|:---|---:|")
				printed = true
			}
			fmt.Fprintf(w, "| %s | %s |\n", r.Symbol, signed(ground))
		}
		return printed
	})

	return b.String()
}
