package internal

import (
	"earnsched/internal/domain"
	"sort"
)

// Aggregate orders the resolved trades for emission. In all mode
// every trade passes through; in best mode one winner is kept per
// symbol and marked. Ordering is deterministic in both modes.
func Aggregate(trades []domain.ScheduledTrade, mode domain.SelectionMode) []domain.ScheduledTrade {
	if mode == domain.SelectBest {
		return aggregateBest(trades)
	}

	out := make([]domain.ScheduledTrade, len(trades))
	copy(out, trades)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Symbol != out[j].Symbol {
			return out[i].Symbol < out[j].Symbol
		}
		if !out[i].EntryDate.Equal(out[j].EntryDate) {
			return out[i].EntryDate.Before(out[j].EntryDate)
		}
		return out[i].Strategy < out[j].Strategy
	})
	return out
}

func aggregateBest(trades []domain.ScheduledTrade) []domain.ScheduledTrade {
	bySymbol := map[string]domain.ScheduledTrade{}
	for _, trade := range trades {
		current, ok := bySymbol[trade.Symbol]
		if !ok || ranksAbove(trade, current) {
			bySymbol[trade.Symbol] = trade
		}
	}

	out := make([]domain.ScheduledTrade, 0, len(bySymbol))
	for _, trade := range bySymbol {
		trade.Best = true
		out = append(out, trade)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// ranksAbove is the best-mode ranking key: total return, then win
// rate, then backtest length, then strategy id as the final
// deterministic tie-break.
func ranksAbove(a, b domain.ScheduledTrade) bool {
	if cmp := a.TotalReturn.Cmp(b.TotalReturn); cmp != 0 {
		return cmp > 0
	}
	if cmp := a.WinRate.Cmp(b.WinRate); cmp != 0 {
		return cmp > 0
	}
	if a.BacktestLength != b.BacktestLength {
		return a.BacktestLength > b.BacktestLength
	}
	return a.Strategy < b.Strategy
}
