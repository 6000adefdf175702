package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	pnl "github.com/kosarinj/robinhood-pnl-tracker-sub001"
	"github.com/kosarinj/robinhood-pnl-tracker-sub001/renderer"
)

// symbolCmd holds the flags for the 'symbol' subcommand.
type symbolCmd struct {
	date string
}

func (*symbolCmd) Name() string     { return "symbol" }
func (*symbolCmd) Synopsis() string { return "detailed profit report for a single symbol" }
func (*symbolCmd) Usage() string {
	return `rhpnl symbol [-d <date>] <symbol>

  Computes the position and profit report for a single symbol and renders
  every accounting method in the terminal. The symbol can name a stock or
  an option contract, an option is looked up under its underlying stock.
`
}

func (c *symbolCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", pnl.Today().String(), "Date to report on. See the user manual for supported date formats.")
}

func (c *symbolCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one symbol is required")
		return subcommands.ExitUsageError
	}
	symbol := strings.ToUpper(f.Arg(0))

	on, err := pnl.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	reports, err := computeReports(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report, ok := findSymbol(reports, symbol)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no trades found for symbol %q\n", symbol)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SymbolMarkdown(report))
	return subcommands.ExitSuccess
}

// findSymbol looks a symbol up in the report list, descending into the
// options folded under each stock row.
func findSymbol(reports []pnl.PositionReport, symbol string) (pnl.PositionReport, bool) {
	for _, r := range reports {
		if r.Symbol == symbol {
			return r, true
		}
		for _, o := range r.Options {
			if o.Symbol == symbol {
				return o, true
			}
		}
	}
	return pnl.PositionReport{}, false
}
