// Package renderer turns position reports into markdown documents for the
// terminal.
package renderer

import (
	"bytes"
	"io"
	"strconv"

	pnl "github.com/kosarinj/robinhood-pnl-tracker-sub001"
)

// ConditionalBlock lets you fully write a block and decide at the end to
// print it or not. If the block function returns true, the content is
// printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// usd renders a report figure as dollars.
func usd(v float64) string { return pnl.USD(v).String() }

// signed renders a report figure as dollars with an explicit sign, zero as
// "-" so flat rows read as quiet.
func signed(v float64) string { return pnl.USD(v).SignedString() }

// qty renders a share count without trailing zeros.
func qty(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
