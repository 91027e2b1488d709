package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InputRecord is one row of the scanner's backtest export. Records
// are read once and never mutated by the pipeline.
type InputRecord struct {
	Symbol             string
	Wins               int
	Losses             int
	WinRate            decimal.Decimal
	AvgTradeReturn     decimal.Decimal
	TotalReturn        decimal.Decimal
	BacktestLength     int
	NextEarnings       time.Time
	PrevEarningsResult *EarningsResult
	Strategy           Strategy
}

// ScheduledTrade is a resolved recommendation: the input row's stats
// plus the concrete entry and exit dates the strategy's offsets map
// to. EntryDate <= ExitDate always holds for a trade that resolved.
type ScheduledTrade struct {
	Symbol         string          `json:"symbol"`
	Strategy       Strategy        `json:"strategy"`
	EntryDate      time.Time       `json:"entry_date"`
	ExitDate       time.Time       `json:"exit_date"`
	Wins           int             `json:"wins"`
	Losses         int             `json:"losses"`
	WinRate        decimal.Decimal `json:"win_rate"`
	AvgTradeReturn decimal.Decimal `json:"avg_trade_return"`
	TotalReturn    decimal.Decimal `json:"total_return"`
	BacktestLength int             `json:"backtest_length"`
	NextEarnings   time.Time       `json:"next_earnings"`
	Best           bool            `json:"best"`
}

// SelectionMode decides whether every qualifying trade is emitted or
// only the top-ranked trade per symbol. Set once from flags.
type SelectionMode int

const (
	SelectAll SelectionMode = iota
	SelectBest
)

func (m SelectionMode) String() string {
	if m == SelectBest {
		return "best"
	}
	return "all"
}
