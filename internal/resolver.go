package internal

import (
	"earnsched/internal/catalog"
	"earnsched/internal/domain"
	"earnsched/internal/util"
)

// ScheduleResolver turns an input record into a concrete scheduled
// trade by applying the catalog's day offsets to the earnings anchor
// date. Resolve is a pure function of the record and the catalog.
type ScheduleResolver struct {
	Catalog *catalog.Catalog
	// AdjustWeekends steps computed dates falling on a weekend back
	// to the preceding Friday.
	AdjustWeekends bool
}

func (r ScheduleResolver) Resolve(record domain.InputRecord) (domain.ScheduledTrade, error) {
	def, err := r.Catalog.Lookup(record.Strategy)
	if err != nil {
		return domain.ScheduledTrade{}, err
	}

	if def.Class == domain.PostEarnings && record.PrevEarningsResult == nil {
		return domain.ScheduledTrade{}, &domain.MissingEarningsResultError{
			Symbol:   record.Symbol,
			Strategy: record.Strategy,
		}
	}

	entry := record.NextEarnings.AddDate(0, 0, def.EntryOffsetDays)
	exit := record.NextEarnings.AddDate(0, 0, def.ExitOffsetDays)
	if r.AdjustWeekends {
		entry = util.ClosestTradingDay(entry)
		exit = util.ClosestTradingDay(exit)
	}

	if entry.After(exit) {
		return domain.ScheduledTrade{}, &domain.CatalogInvariantError{
			Strategy:        record.Strategy,
			EntryOffsetDays: def.EntryOffsetDays,
			ExitOffsetDays:  def.ExitOffsetDays,
			EntryDate:       entry,
			ExitDate:        exit,
		}
	}

	return domain.ScheduledTrade{
		Symbol:         record.Symbol,
		Strategy:       record.Strategy,
		EntryDate:      entry,
		ExitDate:       exit,
		Wins:           record.Wins,
		Losses:         record.Losses,
		WinRate:        record.WinRate,
		AvgTradeReturn: record.AvgTradeReturn,
		TotalReturn:    record.TotalReturn,
		BacktestLength: record.BacktestLength,
		NextEarnings:   record.NextEarnings,
	}, nil
}
