package pnl

import "testing"

// twoLots is the canonical book used across the matching tests:
// 10 shares at $100 then 10 shares at $120.
func twoLots() lots {
	var l lots
	l = l.buy(day1, Q(10), USD(100))
	l = l.buy(day2, Q(10), USD(120))
	return l
}

func TestLots_SellFIFO(t *testing.T) {
	open, realized := twoLots().sell(Q(15), USD(150), false)

	// 10*(150-100) + 5*(150-120) = 650
	if want := USD(650); !realized.Equal(want) {
		t.Errorf("sell() realized = %v, want %v", realized, want)
	}
	if got, want := open.position(), Q(5); !got.Equal(want) {
		t.Errorf("sell() open position = %v, want %v", got, want)
	}
	if got, want := open.avgCost(), USD(120); !got.Equal(want) {
		t.Errorf("sell() open avg cost = %v, want %v", got, want)
	}
}

func TestLots_SellLIFO(t *testing.T) {
	open, realized := twoLots().sell(Q(15), USD(150), true)

	// 10*(150-120) + 5*(150-100) = 550
	if want := USD(550); !realized.Equal(want) {
		t.Errorf("sell() realized = %v, want %v", realized, want)
	}
	if got, want := open.position(), Q(5); !got.Equal(want) {
		t.Errorf("sell() open position = %v, want %v", got, want)
	}
	if got, want := open.avgCost(), USD(100); !got.Equal(want) {
		t.Errorf("sell() open avg cost = %v, want %v", got, want)
	}
}

func TestLots_SellPartialLot(t *testing.T) {
	open, realized := twoLots().sell(Q(4), USD(110), false)

	// 4*(110-100) = 40, the first lot keeps 6 shares.
	if want := USD(40); !realized.Equal(want) {
		t.Errorf("sell() realized = %v, want %v", realized, want)
	}
	if got, want := open.position(), Q(16); !got.Equal(want) {
		t.Errorf("sell() open position = %v, want %v", got, want)
	}
	if got, want := open[0].Quantity, Q(6); !got.Equal(want) {
		t.Errorf("sell() first lot quantity = %v, want %v", got, want)
	}
	if got, want := open[0].Price, USD(100); !got.Equal(want) {
		t.Errorf("sell() first lot price = %v, want %v", got, want)
	}
}

func TestLots_SellMoreThanOpen(t *testing.T) {
	open, realized := twoLots().sell(Q(25), USD(150), false)

	// Only the 20 open shares match, the 5 extra are ignored.
	// 10*(150-100) + 10*(150-120) = 800
	if want := USD(800); !realized.Equal(want) {
		t.Errorf("sell() realized = %v, want %v", realized, want)
	}
	if !open.position().IsZero() {
		t.Errorf("sell() open position = %v, want 0", open.position())
	}
}

func TestLots_SellKeepsChronologicalOrder(t *testing.T) {
	var l lots
	l = l.buy(day1, Q(10), USD(100))
	l = l.buy(day2, Q(10), USD(120))
	l = l.buy(day3, Q(10), USD(90))

	// LIFO consumes the day3 lot fully and half of the day2 lot. The
	// survivors must still read oldest first.
	open, _ := l.sell(Q(15), USD(150), true)
	if len(open) != 2 {
		t.Fatalf("sell() open lots = %d, want 2", len(open))
	}
	if got, want := open[0].Date, day1; got != want {
		t.Errorf("open[0].Date = %v, want %v", got, want)
	}
	if got, want := open[1].Date, day2; got != want {
		t.Errorf("open[1].Date = %v, want %v", got, want)
	}
	if got, want := open[1].Quantity, Q(5); !got.Equal(want) {
		t.Errorf("open[1].Quantity = %v, want %v", got, want)
	}
}

func TestLots_SellDoesNotMutateReceiver(t *testing.T) {
	l := twoLots()
	l.sell(Q(15), USD(150), false)

	if got, want := l.position(), Q(20); !got.Equal(want) {
		t.Errorf("receiver position after sell() = %v, want %v", got, want)
	}
	if got, want := l[0].Quantity, Q(10); !got.Equal(want) {
		t.Errorf("receiver first lot after sell() = %v, want %v", got, want)
	}
}

func TestLots_AvgCost(t *testing.T) {
	l := twoLots()

	// (10*100 + 10*120) / 20 = 110
	if got, want := l.avgCost(), USD(110); !got.Equal(want) {
		t.Errorf("avgCost() = %v, want %v", got, want)
	}

	var empty lots
	if !empty.avgCost().IsZero() {
		t.Errorf("avgCost() on empty lots = %v, want 0", empty.avgCost())
	}
}

func TestLots_Lowest(t *testing.T) {
	var l lots
	l = l.buy(day1, Q(10), USD(120))
	l = l.buy(day2, Q(10), USD(90))
	l = l.buy(day3, Q(10), USD(100))

	low, ok := l.lowest()
	if !ok {
		t.Fatal("lowest() ok = false, want true")
	}
	if got, want := low.Price, USD(90); !got.Equal(want) {
		t.Errorf("lowest().Price = %v, want %v", got, want)
	}
	if got, want := low.Date, day2; got != want {
		t.Errorf("lowest().Date = %v, want %v", got, want)
	}

	var empty lots
	if _, ok := empty.lowest(); ok {
		t.Error("lowest() on empty lots ok = true, want false")
	}
}

func TestLots_SortedByPrice(t *testing.T) {
	var l lots
	l = l.buy(day1, Q(10), USD(120))
	l = l.buy(day2, Q(10), USD(90))
	l = l.buy(day3, Q(10), USD(100))

	sorted := l.sortedByPrice()
	for i, want := range []Money{USD(90), USD(100), USD(120)} {
		if !sorted[i].Price.Equal(want) {
			t.Errorf("sortedByPrice()[%d].Price = %v, want %v", i, sorted[i].Price, want)
		}
	}
	// The receiver keeps its chronological order.
	if got, want := l[0].Price, USD(120); !got.Equal(want) {
		t.Errorf("receiver first lot price = %v, want %v", got, want)
	}
}
