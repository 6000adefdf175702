package pnl

import (
	"fmt"
	"iter"
	"log"
	"math"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// Yahoo style chart API defaults. The endpoint answers one symbol per call
// and carries both the live price and the previous close in its meta block.
const (
	defaultQuoteURL          = "https://query1.finance.yahoo.com/v8/finance/chart/%s"
	defaultPricePath         = "$.chart.result[0].meta.regularMarketPrice"
	defaultPreviousClosePath = "$.chart.result[0].meta.chartPreviousClose"
)

// Quotes fetches the current price and the previous close for symbols from a
// JSON quote API. The URL is a template where %s is replaced by the escaped
// symbol; the two jsonpath expressions locate the figures in the response.
type Quotes struct {
	URL               string
	PricePath         string
	PreviousClosePath string

	client *http.Client
}

// NewQuotes creates a provider on a daily expiring disk cache, so repeated
// report runs within a day do not hammer the quote API. Empty settings fall
// back to the Yahoo style defaults.
func NewQuotes(rawURL, pricePath, previousClosePath string) *Quotes {
	q := &Quotes{
		URL:               rawURL,
		PricePath:         pricePath,
		PreviousClosePath: previousClosePath,
		client:            daily(),
	}
	if q.URL == "" {
		q.URL = defaultQuoteURL
	}
	if q.PricePath == "" {
		q.PricePath = defaultPricePath
	}
	if q.PreviousClosePath == "" {
		q.PreviousClosePath = defaultPreviousClosePath
	}
	return q
}

// Fetch returns the current price and the previous close for one symbol.
func (q *Quotes) Fetch(symbol string) (current, previous Money, err error) {
	addr := fmt.Sprintf(q.URL, url.PathEscape(symbol))
	var jobj any
	if err := jwget(q.client, addr, &jobj); err != nil {
		return Money{}, Money{}, fmt.Errorf("error retrieving %q: %w", symbol, err)
	}

	cur, err := jsonValue(jobj, q.PricePath)
	if err != nil {
		return Money{}, Money{}, fmt.Errorf("error reading price for %q: %w", symbol, err)
	}
	prev, err := jsonValue(jobj, q.PreviousClosePath)
	if err != nil {
		return Money{}, Money{}, fmt.Errorf("error reading previous close for %q: %w", symbol, err)
	}
	return USD(cur), USD(prev), nil
}

// FetchAll fills both price maps for a symbol set. Per symbol failures are
// logged and leave the symbol unquoted; a report with one missing price
// beats no report at all.
func (q *Quotes) FetchAll(symbols iter.Seq[string]) (current, previous PriceMap) {
	current, previous = make(PriceMap), make(PriceMap)
	for symbol := range symbols {
		cur, prev, err := q.Fetch(symbol)
		if err != nil {
			log.Printf("quotes: %v", err)
			continue
		}
		current[symbol] = cur
		previous[symbol] = prev
	}
	return current, previous
}

// jsonValue extracts the float figure at path.
func jsonValue(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %s %v", path, "not a float", jval)
	}
	return val, nil
}
