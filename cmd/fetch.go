package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	pnl "github.com/kosarinj/robinhood-pnl-tracker-sub001"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct{}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetches quotes for every traded symbol" }
func (*fetchCmd) Usage() string {
	return `rhpnl fetch

  Fetches the current price and previous close for every symbol in the
  trade history, and writes them to the price files named in the
  configuration. Responses are cached for the day, so repeated runs do
  not hammer the quote service.
`
}

func (*fetchCmd) SetFlags(_ *flag.FlagSet) {}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, err := loadLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if ledger.Len() == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no trades found, nothing to fetch.")
		return subcommands.ExitSuccess
	}

	quotes := pnl.NewQuotes(cfg.Quotes.URL, cfg.Quotes.PricePath, cfg.Quotes.PreviousClosePath)
	current, previous := quotes.FetchAll(ledger.Symbols())

	if err := writePriceMap(cfg.PricesFile, current); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := writePriceMap(cfg.PreviousCloseFile, previous); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Fetched quotes for %d symbols into %s and %s\n", len(current), cfg.PricesFile, cfg.PreviousCloseFile)
	return subcommands.ExitSuccess
}

func writePriceMap(filename string, prices pnl.PriceMap) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create price file %q: %w", filename, err)
	}
	defer f.Close()
	if err := pnl.EncodePriceMap(f, prices); err != nil {
		return fmt.Errorf("could not write price file %q: %w", filename, err)
	}
	return nil
}
