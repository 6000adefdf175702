// Package cmd implements the CLI application to inspect brokerage trading profit.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/golang/glog"
	"github.com/google/subcommands"
	pnl "github.com/kosarinj/robinhood-pnl-tracker-sub001"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&symbolCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&fetchCmd{}, "data")

	c.Register(&explainCmd{}, "assistant")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "rhpnl.yaml", "Path to the configuration file")

// loadConfig is the central function to read the application configuration.
func loadConfig() (cfg *pnl.Config, err error) {
	cfg, err = pnl.LoadConfig(*configFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, config file does not exist, using the default configuration instead")
		cfg, err = pnl.DefaultConfig(), nil
	}
	return
}

// loadLedger reads the trade history named by the configuration, applies the
// split adjustments if a split file is present, and returns the ledger.
func loadLedger(cfg *pnl.Config) (*pnl.Ledger, error) {
	f, err := os.Open(cfg.TradesFile)
	if err != nil {
		return nil, fmt.Errorf("could not open trades file %q: %w", cfg.TradesFile, err)
	}
	defer f.Close()

	trades, err := pnl.DecodeTrades(f)
	if err != nil {
		return nil, fmt.Errorf("could not read trades file %q: %w", cfg.TradesFile, err)
	}

	if ratios, err := loadSplits(cfg); err != nil {
		return nil, err
	} else if len(ratios) > 0 {
		trades = pnl.AdjustSplits(trades, ratios)
	}

	return pnl.NewLedger(trades...), nil
}

// loadSplits reads the split ratio file. A missing file simply means there are
// no splits to adjust for.
func loadSplits(cfg *pnl.Config) (map[string]float64, error) {
	f, err := os.Open(cfg.SplitsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open splits file %q: %w", cfg.SplitsFile, err)
	}
	defer f.Close()

	ratios, err := pnl.DecodeSplits(f)
	if err != nil {
		return nil, fmt.Errorf("could not read splits file %q: %w", cfg.SplitsFile, err)
	}
	return ratios, nil
}

// loadPrices reads the current and previous close price files. A missing file
// yields an empty map, reports then value the affected positions at zero.
func loadPrices(cfg *pnl.Config) (current, previous pnl.PriceMap, err error) {
	current, err = loadPriceMap(cfg.PricesFile)
	if err != nil {
		return nil, nil, err
	}
	previous, err = loadPriceMap(cfg.PreviousCloseFile)
	if err != nil {
		return nil, nil, err
	}
	return current, previous, nil
}

func loadPriceMap(filename string) (pnl.PriceMap, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, price file %q does not exist, positions will be valued at zero", filename)
		return pnl.PriceMap{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open price file %q: %w", filename, err)
	}
	defer f.Close()

	prices, err := pnl.DecodePriceMap(f)
	if err != nil {
		return nil, fmt.Errorf("could not read price file %q: %w", filename, err)
	}
	return prices, nil
}

// reportDebug forwards the report engine narration to the verbose log.
// Run with -v=2 -logtostderr to see why rows were skipped or folded.
func reportDebug(msg string) { glog.V(2).Info(msg) }

// printMarkdown renders markdown for the terminal. It falls back to printing
// the raw markdown when the terminal renderer cannot be built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
