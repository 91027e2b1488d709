package repository

import (
	"earnsched/internal/calculator"
	"earnsched/internal/domain"
	"earnsched/internal/util"
	"fmt"
	"io"
	"text/tabwriter"
)

type ReportRepository interface {
	Write(w io.Writer, trades []domain.ScheduledTrade, summary *calculator.TradeSummary) error
}

type ReportRepositoryHandler struct{}

func NewReportRepository() ReportRepository {
	return ReportRepositoryHandler{}
}

// Write renders the recommendation table. Best-mode winners carry a
// "*" marker. A nil summary (empty run) produces just the header and
// a zero-trades note.
func (h ReportRepositoryHandler) Write(w io.Writer, trades []domain.ScheduledTrade, summary *calculator.TradeSummary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "SYMBOL\tSTRATEGY\tENTRY\tEXIT\tWIN RATE\tAVG RETURN\tTOTAL RETURN\tTRADES\tBEST")
	for _, trade := range trades {
		best := ""
		if trade.Best {
			best = "*"
		}
		fmt.Fprintf(
			tw,
			"%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			trade.Symbol,
			trade.Strategy,
			trade.EntryDate.Format(util.DateLayout),
			trade.ExitDate.Format(util.DateLayout),
			trade.WinRate.String(),
			trade.AvgTradeReturn.String(),
			trade.TotalReturn.String(),
			trade.BacktestLength,
			best,
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if summary == nil {
		_, err := fmt.Fprintln(w, "\nno trades matched")
		return err
	}

	fmt.Fprintf(
		w,
		"\n%d trades | mean total return %.4f | median total return %.4f | mean win rate %.4f",
		summary.TradeCount,
		summary.MeanTotalReturn,
		summary.MedianTotalReturn,
		summary.MeanWinRate,
	)
	if summary.TotalReturnStdev != nil {
		fmt.Fprintf(w, " | total return stdev %.4f", *summary.TotalReturnStdev)
	}
	_, err := fmt.Fprintln(w)
	return err
}
