package pnl

import "sort"

// lot represents a single purchase still open for matching against later
// sales. Lots live only inside one symbol's computation and never cross
// symbol boundaries.
type lot struct {
	Date     Date
	Quantity Quantity
	Price    Money // purchase price per share
}

// lots is an open lot collection kept in chronological order.
type lots []lot

// buy appends a new open lot.
func (l lots) buy(day Date, quantity Quantity, price Money) lots {
	return append(l, lot{Date: day, Quantity: quantity, Price: price})
}

// sell matches quantityToSell against the open lots and returns the remaining
// lots along with the realized gain of this sale, accumulated per match as
// (sell price - lot price) * matched quantity. With newestFirst false the
// front of the collection is consumed first (FIFO), otherwise the back
// (LIFO). Selling more than is open realizes only the open part; the excess
// quantity is ignored.
func (l lots) sell(quantityToSell Quantity, price Money, newestFirst bool) (lots, Money) {
	var realized Money
	remaining := make(lots, len(l))
	copy(remaining, l)

	order := make([]int, len(remaining))
	for i := range order {
		order[i] = i
	}
	if newestFirst {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	for _, i := range order {
		if !quantityToSell.IsPositive() {
			break
		}
		matched := remaining[i].Quantity.Min(quantityToSell)
		realized = realized.Add(price.Sub(remaining[i].Price).Mul(matched))
		remaining[i].Quantity = remaining[i].Quantity.Sub(matched)
		quantityToSell = quantityToSell.Sub(matched)
	}

	kept := make(lots, 0, len(remaining))
	for _, open := range remaining {
		if open.Quantity.IsPositive() {
			kept = append(kept, open)
		}
	}
	return kept, realized
}

// position returns the total open quantity.
func (l lots) position() Quantity {
	var total Quantity
	for _, open := range l {
		total = total.Add(open.Quantity)
	}
	return total
}

// cost returns the total cost of the open lots (price times quantity summed).
func (l lots) cost() Money {
	var total Money
	for _, open := range l {
		total = total.Add(open.Price.Mul(open.Quantity))
	}
	return total
}

// avgCost returns the lot weighted average price of the open lots, or zero
// when nothing is open.
func (l lots) avgCost() Money {
	position := l.position()
	if !position.IsPositive() {
		return Money{}
	}
	return l.cost().Div(position)
}

// lowest returns the open lot with the lowest price. It returns false when
// nothing is open.
func (l lots) lowest() (lot, bool) {
	if len(l) == 0 {
		return lot{}, false
	}
	best := l[0]
	for _, open := range l[1:] {
		if open.Price.LessThan(best.Price) {
			best = open
		}
	}
	return best, true
}

// sortedByPrice returns a copy of the lots ordered by ascending price. Lots
// at the same price keep their chronological order.
func (l lots) sortedByPrice() lots {
	sorted := make(lots, len(l))
	copy(sorted, l)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price.LessThan(sorted[j].Price)
	})
	return sorted
}
