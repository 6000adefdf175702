package pnl

import "time"

// Canned trading days for tests, in chronological order.
var (
	day1 = NewDate(2025, time.June, 2)
	day2 = NewDate(2025, time.June, 3)
	day3 = NewDate(2025, time.June, 4)
	day4 = NewDate(2025, time.June, 5)
)

// buy is a helper for tests to create a stock buy from consts.
func buy(on Date, symbol string, quantity, price float64) Trade {
	return NewTrade("", on, symbol, "", false, true, Q(quantity), USD(price))
}

// sell is a helper for tests to create a stock sell from consts.
func sell(on Date, symbol string, quantity, price float64) Trade {
	return NewTrade("", on, symbol, "", false, false, Q(quantity), USD(price))
}

// optBuy is a helper for tests to create an option buy from consts.
func optBuy(on Date, symbol, description string, quantity, price float64) Trade {
	return NewTrade("", on, symbol, description, true, true, Q(quantity), USD(price))
}

// optSell is a helper for tests to create an option sell from consts.
func optSell(on Date, symbol, description string, quantity, price float64) Trade {
	return NewTrade("", on, symbol, description, true, false, Q(quantity), USD(price))
}

// prices is a helper for tests to build a price map from consts.
func prices(kv ...any) PriceMap {
	m := PriceMap{}
	for i := 0; i < len(kv); i += 2 {
		m[kv[i].(string)] = USD(kv[i+1].(float64))
	}
	return m
}

// near reports whether two floats are equal up to a rounding hair.
func near(got, want float64) bool {
	diff := got - want
	return diff < 1e-6 && diff > -1e-6
}
