package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	pnl "github.com/kosarinj/robinhood-pnl-tracker-sub001"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	date       string
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "exports position rows as JSON" }
func (*exportCmd) Usage() string {
	return `rhpnl export [-d <date>] [-o <file>]

  Computes the position report and writes the per-symbol rows as a JSON
  array, in the flat schema downstream dashboards consume. Writes to
  stdout unless -o names a file.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", pnl.Today().String(), "Date to report on. See the user manual for supported date formats.")
	f.StringVar(&c.outputFile, "o", "", "File to write the rows to. Writes to stdout by default.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	rows := make([]pnl.PositionRow, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, r.Row())
	}

	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding rows: %v\n", err)
		return subcommands.ExitFailure
	}
	b = append(b, '\n')

	if c.outputFile == "" {
		os.Stdout.Write(b)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.outputFile, b, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %d rows to %s\n", len(rows), c.outputFile)
	return subcommands.ExitSuccess
}
