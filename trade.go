package pnl

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Trade is a single brokerage execution as it appears in an account export.
// Trades are immutable once loaded; every derived figure (lots, positions,
// profits) is rebuilt from scratch each time a report is computed.
type Trade struct {
	ID          string     // broker assigned identifier, unique within an export
	Date        Date       // execution day, time of day is not kept
	Symbol      string     // grouping key; for options this is the full contract text
	Description string     // human readable description as exported
	Instrument  Instrument // resolved once from Symbol and Description
	IsOption    bool       // true for option contract executions
	IsBuy       bool       // true for buys, false for sells
	Quantity    Quantity   // number of shares or contracts, positive
	Price       Money      // execution price per share or contract
	Amount      Money      // total cash moved, as reported by the broker
}

// NewTrade creates a trade and resolves its instrument. The broker amount is
// derived as price times quantity; loaders that carry an explicit amount
// column overwrite it after construction.
func NewTrade(id string, day Date, symbol, description string, isOption, isBuy bool, quantity Quantity, price Money) Trade {
	t := Trade{
		ID:          id,
		Date:        day,
		Symbol:      symbol,
		Description: description,
		IsOption:    isOption,
		IsBuy:       isBuy,
		Quantity:    quantity,
		Price:       price,
		Amount:      price.Mul(quantity),
	}
	t.Instrument = ParseInstrument(symbol, description, isOption)
	return t
}

// Notional returns price times quantity, the figure all accounting methods
// work from. The broker reported Amount may include fees and is kept for
// reference only.
func (t Trade) Notional() Money { return t.Price.Mul(t.Quantity) }

// degenerate reports whether the record violates the upstream contract
// (non-positive quantity or price). Such records are skipped, never fatal.
func (t Trade) degenerate() bool {
	return !t.Quantity.IsPositive() || !t.Price.IsPositive()
}

// Validate checks the upstream contract on a freshly decoded trade.
func (t Trade) Validate() error {
	if t.Symbol == "" {
		return errors.New("trade symbol is missing")
	}
	if t.Quantity.IsNegative() || t.Quantity.IsZero() {
		return fmt.Errorf("trade quantity must be positive, got %s", t.Quantity)
	}
	if t.Price.IsNegative() || t.Price.IsZero() {
		return fmt.Errorf("trade price must be positive, got %s", t.Price)
	}
	return nil
}

func (t Trade) Equal(o Trade) bool {
	return t.ID == o.ID && t.Date == o.Date && t.Symbol == o.Symbol &&
		t.Description == o.Description && t.IsOption == o.IsOption && t.IsBuy == o.IsBuy &&
		t.Quantity.Equal(o.Quantity) && t.Price.Equal(o.Price) && t.Amount.Equal(o.Amount)
}

// MarshalJSON implements the json.Marshaler interface for Trade.
func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("symbol", t.Symbol)
	w.Optional("description", t.Description)
	w.Optional("is_option", t.IsOption)
	w.Append("is_buy", t.IsBuy)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price)
	w.Append("amount", t.Amount)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Trade. The
// instrument is resolved here so the engines never parse descriptions.
func (t *Trade) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          string   `json:"id"`
		Date        Date     `json:"date"`
		Symbol      string   `json:"symbol"`
		Description string   `json:"description"`
		IsOption    bool     `json:"is_option"`
		IsBuy       bool     `json:"is_buy"`
		Quantity    Quantity `json:"quantity"`
		Price       Money    `json:"price"`
		Amount      Money    `json:"amount"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*t = Trade{
		ID:          temp.ID,
		Date:        temp.Date,
		Symbol:      temp.Symbol,
		Description: temp.Description,
		IsOption:    temp.IsOption,
		IsBuy:       temp.IsBuy,
		Quantity:    temp.Quantity,
		Price:       temp.Price,
		Amount:      temp.Amount,
	}
	if t.Amount.IsZero() {
		t.Amount = t.Notional()
	}
	t.Instrument = ParseInstrument(t.Symbol, t.Description, t.IsOption)
	return nil
}
