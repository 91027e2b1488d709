package calculator

import (
	"earnsched/internal/domain"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func summaryTrade(totalReturn, winRate string) domain.ScheduledTrade {
	return domain.ScheduledTrade{
		TotalReturn: decimal.RequireFromString(totalReturn),
		WinRate:     decimal.RequireFromString(winRate),
	}
}

func Test_Summarize(t *testing.T) {
	t.Run("empty input yields no summary", func(t *testing.T) {
		summary, err := Summarize(nil)
		require.NoError(t, err)
		require.Nil(t, summary)
	})

	t.Run("single trade has no stdev", func(t *testing.T) {
		summary, err := Summarize([]domain.ScheduledTrade{
			summaryTrade("1.5", "0.75"),
		})
		require.NoError(t, err)
		require.Equal(t, 1, summary.TradeCount)
		require.InDelta(t, 1.5, summary.MeanTotalReturn, 1e-9)
		require.InDelta(t, 1.5, summary.MedianTotalReturn, 1e-9)
		require.InDelta(t, 0.75, summary.MeanWinRate, 1e-9)
		require.Nil(t, summary.TotalReturnStdev)
	})

	t.Run("multiple trades", func(t *testing.T) {
		summary, err := Summarize([]domain.ScheduledTrade{
			summaryTrade("1.0", "0.5"),
			summaryTrade("2.0", "0.6"),
			summaryTrade("3.0", "0.7"),
		})
		require.NoError(t, err)
		require.Equal(t, 3, summary.TradeCount)
		require.InDelta(t, 2.0, summary.MeanTotalReturn, 1e-9)
		require.InDelta(t, 2.0, summary.MedianTotalReturn, 1e-9)
		require.InDelta(t, 0.6, summary.MeanWinRate, 1e-9)
		require.NotNil(t, summary.TotalReturnStdev)
		require.InDelta(t, 1.0, *summary.TotalReturnStdev, 1e-9)
	})
}
