package repository

import (
	"bytes"
	"earnsched/internal/calculator"
	"earnsched/internal/domain"
	"earnsched/internal/util"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_ReportRepository_Write(t *testing.T) {
	repo := NewReportRepository()

	trades := []domain.ScheduledTrade{
		{
			Symbol:         "AAPL",
			Strategy:       domain.Call7dPreEarnings,
			EntryDate:      util.NewDate(2024, 4, 25),
			ExitDate:       util.NewDate(2024, 5, 2),
			WinRate:        decimal.RequireFromString("0.75"),
			AvgTradeReturn: decimal.RequireFromString("0.05"),
			TotalReturn:    decimal.RequireFromString("1.5"),
			BacktestLength: 40,
			Best:           true,
		},
	}

	t.Run("renders trades with dates and best marker", func(t *testing.T) {
		var buf bytes.Buffer
		summary, err := calculator.Summarize(trades)
		require.NoError(t, err)
		require.NoError(t, repo.Write(&buf, trades, summary))

		out := buf.String()
		require.Contains(t, out, "SYMBOL")
		require.Contains(t, out, "AAPL")
		require.Contains(t, out, "call_7d_preearnings")
		require.Contains(t, out, "2024-04-25")
		require.Contains(t, out, "2024-05-02")
		require.Contains(t, out, "*")
		require.Contains(t, out, "1 trades")
	})

	t.Run("empty report notes zero trades", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, repo.Write(&buf, nil, nil))
		require.Contains(t, buf.String(), "no trades matched")
	})

	t.Run("unmarked trades have no marker column value", func(t *testing.T) {
		plain := trades[0]
		plain.Best = false

		var buf bytes.Buffer
		require.NoError(t, repo.Write(&buf, []domain.ScheduledTrade{plain}, nil))

		lines := strings.Split(buf.String(), "\n")
		require.Greater(t, len(lines), 1)
		require.NotContains(t, lines[1], "*")
	})
}
