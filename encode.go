package pnl

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeTrades reads a brokerage export: a JSON array of trade rows. Dates
// are accepted as plain days or RFC3339 timestamps; the time of day is
// dropped. Rows that do not decode, or that violate the upstream contract,
// are logged and skipped rather than failing the whole file.
func DecodeTrades(r io.Reader) ([]Trade, error) {
	var rows []json.RawMessage
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("cannot decode trades: %w", err)
	}

	trades := make([]Trade, 0, len(rows))
	skipped := 0
	for i, row := range rows {
		var t Trade
		if err := json.Unmarshal(row, &t); err != nil {
			log.Printf("trades: skipping row %d: %v", i, err)
			skipped++
			continue
		}
		if err := t.Validate(); err != nil {
			log.Printf("trades: skipping row %d: %v", i, err)
			skipped++
			continue
		}
		trades = append(trades, t)
	}
	if skipped > 0 {
		log.Printf("trades: skipped %d malformed rows", skipped)
	}
	return trades, nil
}

// EncodeTrades writes trades as a JSON array in chronological order, one row
// per line so exports diff cleanly.
func EncodeTrades(w io.Writer, trades []Trade) error {
	sorted := make([]Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	if _, err := io.WriteString(w, "[\n"); err != nil {
		return fmt.Errorf("failed to write trades: %w", err)
	}
	for i, t := range sorted {
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("failed to marshal trade %s: %w", t.ID, err)
		}
		sep := ","
		if i == len(sorted)-1 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "  %s%s\n", b, sep); err != nil {
			return fmt.Errorf("failed to write trades: %w", err)
		}
	}
	if _, err := io.WriteString(w, "]\n"); err != nil {
		return fmt.Errorf("failed to write trades: %w", err)
	}
	return nil
}

// DecodePriceMap reads a {"SYMBOL": price} JSON object, the format of both
// the current price and the previous close files.
func DecodePriceMap(r io.Reader) (PriceMap, error) {
	var raw map[string]decimal.Decimal
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("cannot decode prices: %w", err)
	}
	prices := make(PriceMap, len(raw))
	for symbol, value := range raw {
		prices[symbol] = USD(value)
	}
	return prices, nil
}

// EncodePriceMap writes prices as a JSON object with symbols in ascending
// order, so price files stay canonical between refreshes.
func EncodePriceMap(w io.Writer, prices PriceMap) error {
	symbols := make([]string, 0, len(prices))
	for symbol := range prices {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	var jw jsonObjectWriter
	for _, symbol := range symbols {
		jw.Append(symbol, prices[symbol])
	}
	b, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal prices: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("failed to write prices: %w", err)
	}
	return nil
}

// DecodeSplits reads a {"SYMBOL": ratio} JSON object feeding AdjustSplits,
// e.g. {"AAPL": 4} for a four for one split.
func DecodeSplits(r io.Reader) (map[string]float64, error) {
	var ratios map[string]float64
	if err := json.NewDecoder(r).Decode(&ratios); err != nil {
		return nil, fmt.Errorf("cannot decode splits: %w", err)
	}
	return ratios, nil
}
