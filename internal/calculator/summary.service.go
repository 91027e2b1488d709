package calculator

import (
	"earnsched/internal/domain"
	"fmt"

	"github.com/montanaflynn/stats"
)

// TradeSummary holds descriptive statistics over the emitted trades,
// shown in the report footer. Values are floats for display only;
// ranking upstream always compares exact decimals.
type TradeSummary struct {
	TradeCount        int
	MeanTotalReturn   float64
	MedianTotalReturn float64
	MeanWinRate       float64
	// TotalReturnStdev is nil when fewer than two trades survive,
	// since a sample stdev needs at least two observations.
	TotalReturnStdev *float64
}

// Summarize computes the report footer stats. An empty trade set
// yields a nil summary, not an error.
func Summarize(trades []domain.ScheduledTrade) (*TradeSummary, error) {
	if len(trades) == 0 {
		return nil, nil
	}

	totalReturns := make([]float64, 0, len(trades))
	winRates := make([]float64, 0, len(trades))
	for _, trade := range trades {
		totalReturns = append(totalReturns, trade.TotalReturn.InexactFloat64())
		winRates = append(winRates, trade.WinRate.InexactFloat64())
	}

	meanReturn, err := stats.Mean(totalReturns)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean total return: %w", err)
	}
	medianReturn, err := stats.Median(totalReturns)
	if err != nil {
		return nil, fmt.Errorf("failed to compute median total return: %w", err)
	}
	meanWinRate, err := stats.Mean(winRates)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean win rate: %w", err)
	}

	summary := &TradeSummary{
		TradeCount:        len(trades),
		MeanTotalReturn:   meanReturn,
		MedianTotalReturn: medianReturn,
		MeanWinRate:       meanWinRate,
	}

	if len(trades) >= 2 {
		stdev, err := stats.StandardDeviationSample(totalReturns)
		if err != nil {
			return nil, fmt.Errorf("failed to compute total return stdev: %w", err)
		}
		summary.TotalReturnStdev = &stdev
	}

	return summary, nil
}
