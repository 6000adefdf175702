package pnl

// dailyMetrics computes the day's metrics for one symbol from the canonical
// open position (the average cost engine's, after epsilon treatment).
//
// dailyPnL is the price move since the previous close applied to the open
// position, zero when nothing is held. madeUpGround surfaces days where
// realized trading activity more than offset a price decline: when the price
// fell and dailyPnL plus the profit realized by today's sells still comes
// out positive, that sum is the ground made up. It is exactly zero whenever
// the price did not fall, or the combined daily profit is not positive.
func dailyMetrics(position Quantity, current, previous Money, todaysRealized Money) (dailyPnL, madeUpGround Money) {
	if position.IsPositive() {
		dailyPnL = current.Sub(previous).Mul(position)
	}
	if total := dailyPnL.Add(todaysRealized); current.LessThan(previous) && total.IsPositive() {
		madeUpGround = total
	}
	return dailyPnL, madeUpGround
}
