// Package pnl computes per-instrument position-and-profit reports from a
// list of brokerage trade executions. Every report is produced under four
// independent accounting conventions at once, so the same trade history can
// be read as cash flow, as tax lots, or as a blended average.
//
// The core functionalities include:
//   - Trade Ledger: an immutable, chronologically sorted record of buy and
//     sell executions, grouped per instrument symbol.
//   - Accounting Engines: a cash-flow "Real" method, strict FIFO and LIFO
//     lot matching, and a weighted Average Cost method, each producing
//     realized/unrealized profit and the residual open position.
//   - Daily Metrics: profit versus the previous close and the "made up
//     ground" figure that surfaces days where realized trading more than
//     offset a price decline.
//   - Options Rollup: option contracts are attributed to their underlying
//     instrument and folded into the parent's aggregate report.
//   - Collaborator Boundaries: split adjustment, trade/price file encoding,
//     and an HTTP quote provider live outside the pure engine and feed it
//     plain inputs.
//
// The engine is a pure function of its inputs: given the same analysis
// date, trades and price maps it returns identical output on every call,
// so callers may re-invoke it freely on each price tick or manual edit.
// This package serves as the foundational logic for the `rhpnl`
// command-line tool.
package pnl
