package pnl

// rollupOptions attributes every option report to its underlying stock row
// and folds the option's profits into the parent's aggregate fields. Folded
// options leave the top level and are retained verbatim under the parent's
// Options list. An option with no resolvable parent, or whose parent never
// traded as a stock, stays in the flat list so its figures are never
// silently dropped; both cases are narrated through the diagnostic sink.
func rollupOptions(flat []PositionReport, dbg debugf) []PositionReport {
	stocks := make(map[string]int)
	for i, r := range flat {
		if !r.IsOption {
			stocks[r.Symbol] = i
		}
	}

	folded := make([]bool, len(flat))
	for i := range flat {
		opt := &flat[i]
		if !opt.IsOption {
			continue
		}
		if opt.ParentInstrument == "" {
			dbg("%s: option has no resolvable parent", opt.Symbol)
			continue
		}
		j, ok := stocks[opt.ParentInstrument]
		if !ok {
			dbg("%s: no stock position for parent %s", opt.Symbol, opt.ParentInstrument)
			continue
		}
		parent := &flat[j]
		parent.OptionsPnL += opt.Real.TotalPnL
		parent.OptionsDailyPnL += opt.DailyPnL
		parent.OptionsMadeUpGround += opt.MadeUpGround
		parent.OptionsCount++
		parent.Options = append(parent.Options, *opt)
		folded[i] = true
	}

	final := make([]PositionReport, 0, len(flat))
	for i := range flat {
		if folded[i] {
			continue
		}
		final = append(final, flat[i])
	}
	return final
}
