package internal

import (
	"earnsched/internal/catalog"
	"earnsched/internal/domain"
	"earnsched/internal/util"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func preRecord() domain.InputRecord {
	return domain.InputRecord{
		Symbol:         "AAPL",
		Wins:           30,
		Losses:         10,
		WinRate:        decimal.RequireFromString("0.75"),
		AvgTradeReturn: decimal.RequireFromString("0.05"),
		TotalReturn:    decimal.RequireFromString("1.50"),
		BacktestLength: 40,
		NextEarnings:   util.NewDate(2024, 5, 2),
		Strategy:       domain.Call7dPreEarnings,
	}
}

func Test_ScheduleResolver_Resolve(t *testing.T) {
	resolver := ScheduleResolver{Catalog: catalog.Default()}

	t.Run("pre-earnings entry precedes earnings, exit lands on it", func(t *testing.T) {
		trade, err := resolver.Resolve(preRecord())
		require.NoError(t, err)

		require.Equal(t, util.NewDate(2024, 4, 25), trade.EntryDate)
		require.Equal(t, util.NewDate(2024, 5, 2), trade.ExitDate)
		require.Equal(t, "AAPL", trade.Symbol)
		require.Equal(t, domain.Call7dPreEarnings, trade.Strategy)
		require.False(t, trade.Best)
	})

	t.Run("carries the input stats through", func(t *testing.T) {
		record := preRecord()
		trade, err := resolver.Resolve(record)
		require.NoError(t, err)

		require.Equal(t, record.Wins, trade.Wins)
		require.Equal(t, record.Losses, trade.Losses)
		require.True(t, record.WinRate.Equal(trade.WinRate))
		require.True(t, record.TotalReturn.Equal(trade.TotalReturn))
		require.Equal(t, record.BacktestLength, trade.BacktestLength)
		require.Equal(t, record.NextEarnings, trade.NextEarnings)
	})

	t.Run("post-earnings with a previous result", func(t *testing.T) {
		result := domain.EarningsBeat
		record := preRecord()
		record.Strategy = domain.IronCondorPostEarnings
		record.PrevEarningsResult = &result
		record.NextEarnings = util.NewDate(2024, 6, 10)

		trade, err := resolver.Resolve(record)
		require.NoError(t, err)
		require.Equal(t, util.NewDate(2024, 6, 11), trade.EntryDate)
		require.Equal(t, util.NewDate(2024, 7, 10), trade.ExitDate)
		require.True(t, util.DateGte(trade.EntryDate, record.NextEarnings))
		require.True(t, trade.ExitDate.After(trade.EntryDate))
	})

	t.Run("post-earnings without a previous result fails", func(t *testing.T) {
		record := preRecord()
		record.Strategy = domain.LongStraddlePostEarnings

		_, err := resolver.Resolve(record)
		var missingErr *domain.MissingEarningsResultError
		require.ErrorAs(t, err, &missingErr)
		require.Equal(t, "AAPL", missingErr.Symbol)
	})

	t.Run("previous result is ignored for pre-earnings", func(t *testing.T) {
		result := domain.EarningsMiss
		record := preRecord()
		record.PrevEarningsResult = &result

		_, err := resolver.Resolve(record)
		require.NoError(t, err)
	})

	t.Run("unknown strategy fails", func(t *testing.T) {
		record := preRecord()
		record.Strategy = "bogus_strategy"

		_, err := resolver.Resolve(record)
		var unknownErr *domain.UnknownStrategyError
		require.ErrorAs(t, err, &unknownErr)
	})

	t.Run("resolution is idempotent", func(t *testing.T) {
		first, err := resolver.Resolve(preRecord())
		require.NoError(t, err)
		second, err := resolver.Resolve(preRecord())
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("catalog producing entry after exit is fatal", func(t *testing.T) {
		broken := ScheduleResolver{Catalog: catalog.New(map[domain.Strategy]catalog.StrategyDefinition{
			domain.Call7dPreEarnings: {Class: domain.PreEarnings, EntryOffsetDays: 2, ExitOffsetDays: 0},
		})}

		_, err := broken.Resolve(preRecord())
		var invariantErr *domain.CatalogInvariantError
		require.ErrorAs(t, err, &invariantErr)
		require.Equal(t, domain.Call7dPreEarnings, invariantErr.Strategy)
	})
}

func Test_ScheduleResolver_AdjustWeekends(t *testing.T) {
	resolver := ScheduleResolver{Catalog: catalog.Default(), AdjustWeekends: true}

	t.Run("weekend dates step back to Friday", func(t *testing.T) {
		result := domain.EarningsBeat
		record := preRecord()
		record.Strategy = domain.IronCondorPostEarnings
		record.PrevEarningsResult = &result
		// Friday anchor: entry +1 lands on Saturday, exit +30 on Sunday.
		record.NextEarnings = util.NewDate(2024, 5, 3)

		trade, err := resolver.Resolve(record)
		require.NoError(t, err)
		require.Equal(t, util.NewDate(2024, 5, 3), trade.EntryDate)
		require.Equal(t, util.NewDate(2024, 5, 31), trade.ExitDate)
	})

	t.Run("weekday dates are untouched", func(t *testing.T) {
		trade, err := resolver.Resolve(preRecord())
		require.NoError(t, err)
		require.Equal(t, util.NewDate(2024, 4, 25), trade.EntryDate)
		require.Equal(t, util.NewDate(2024, 5, 2), trade.ExitDate)
	})
}
