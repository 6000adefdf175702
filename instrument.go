package pnl

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// InstrumentKind distinguishes plain stocks from option contracts.
type InstrumentKind int

const (
	// Stock is a plain share position.
	Stock InstrumentKind = iota
	// Option is a listed option contract on an underlying stock.
	Option
)

// String returns the name of the kind.
func (k InstrumentKind) String() string {
	switch k {
	case Stock:
		return "stock"
	case Option:
		return "option"
	}
	return "unknown"
}

// MarshalJSON implements the json.Marshaler interface for InstrumentKind.
func (k InstrumentKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

// UnmarshalJSON implements the json.Unmarshaler interface for InstrumentKind.
func (k *InstrumentKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "stock":
		*k = Stock
	case "option":
		*k = Option
	default:
		return fmt.Errorf("unknown instrument kind: %q", s)
	}
	return nil
}

// OptionRight is the side of an option contract.
type OptionRight int

const (
	// Call is the right to buy the underlying at the strike.
	Call OptionRight = iota + 1
	// Put is the right to sell the underlying at the strike.
	Put
)

// String returns the name of the right, or "" when unset.
func (r OptionRight) String() string {
	switch r {
	case Call:
		return "call"
	case Put:
		return "put"
	}
	return ""
}

// MarshalJSON implements the json.Marshaler interface for OptionRight.
func (r OptionRight) MarshalJSON() ([]byte, error) { return json.Marshal(r.String()) }

// UnmarshalJSON implements the json.Unmarshaler interface for OptionRight.
func (r *OptionRight) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "call":
		*r = Call
	case "put":
		*r = Put
	case "":
		*r = 0
	default:
		return fmt.Errorf("unknown option right: %q", s)
	}
	return nil
}

// Instrument identifies what a trade was made in. Option contracts carry the
// symbol of their underlying stock, resolved once at parse time, so that
// rollups and reports never have to re-derive it from the human readable
// description.
type Instrument struct {
	Symbol     string         `json:"symbol"` // ticker or contract symbol as exported
	Kind       InstrumentKind `json:"kind"`
	Underlying string         `json:"underlying,omitempty"` // option only: the parent stock symbol
	Expiry     Date           `json:"expiry,omitzero"`      // option only, zero when absent from the description
	Right      OptionRight    `json:"right,omitempty"`      // option only, zero when absent
	Strike     Money          `json:"strike,omitzero"`      // option only, zero when absent
}

// IsOption reports whether the instrument is an option contract.
func (i Instrument) IsOption() bool { return i.Kind == Option }

var (
	// underlyingRE captures the leading run of capital letters of an option
	// description, e.g. "AAPL" in "AAPL 6/18/2021 Call $130.00".
	underlyingRE = regexp.MustCompile(`^[A-Z]+`)
	expiryRE     = regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{4})\b`)
	rightRE      = regexp.MustCompile(`\b([Cc]all|[Pp]ut)\b`)
	strikeRE     = regexp.MustCompile(`\$(\d+(?:\.\d+)?)`)
)

// ParseInstrument resolves the instrument a trade row refers to. Stocks map
// to their plain symbol; option rows are handed to ParseOptionDescription.
func ParseInstrument(symbol, description string, isOption bool) Instrument {
	if !isOption {
		return Instrument{Symbol: symbol, Kind: Stock}
	}
	return ParseOptionDescription(symbol, description)
}

// ParseOptionDescription extracts the option tags from a human readable
// contract text like "AAPL 6/18/2021 Call $130.00". The underlying is the
// leading run of capital letters; expiry, right and strike are extracted on
// a best effort basis and stay zero when the text does not carry them. An
// option whose text yields no underlying cannot be rolled up later.
func ParseOptionDescription(symbol, description string) Instrument {
	inst := Instrument{Symbol: symbol, Kind: Option}
	inst.Underlying = underlyingRE.FindString(description)
	if m := expiryRE.FindStringSubmatch(description); m != nil {
		if t, err := time.Parse("1/2/2006", m[1]); err == nil {
			inst.Expiry = NewDate(t.Date())
		}
	}
	if m := rightRE.FindStringSubmatch(description); m != nil {
		switch m[1][0] {
		case 'C', 'c':
			inst.Right = Call
		default:
			inst.Right = Put
		}
	}
	if m := strikeRE.FindStringSubmatch(description); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			inst.Strike = USD(f)
		}
	}
	return inst
}
