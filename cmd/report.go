package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	pnl "github.com/kosarinj/robinhood-pnl-tracker-sub001"
	"github.com/kosarinj/robinhood-pnl-tracker-sub001/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	date string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "position and profit report for the whole account" }
func (*reportCmd) Usage() string {
	return `rhpnl report [-d <date>]

  Computes the position and profit report for every traded symbol and
  renders it in the terminal. Option positions are folded into their
  underlying stock rows.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", pnl.Today().String(), "Date to report on. See the user manual for supported date formats.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	md := renderer.PositionsMarkdown(reports, on)
	printMarkdown(md)

	return subcommands.ExitSuccess
}

// computeReports loads everything the report engine needs and runs it.
// It is shared by the subcommands that consume position reports.
func computeReports(on pnl.Date) ([]pnl.PositionReport, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	ledger, err := loadLedger(cfg)
	if err != nil {
		return nil, err
	}
	current, previous, err := loadPrices(cfg)
	if err != nil {
		return nil, err
	}
	return ledger.PositionReports(on, current, previous, reportDebug), nil
}
