package repository

import (
	"bytes"
	"earnsched/internal/domain"
	"earnsched/internal/util"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// scanColumnCount pins the exported schema:
// symbol,wins,losses,win_rate,avg_trade_return,total_return,
// backtest_length,next_earnings,prev_earnings_result,strategy.
// Older exports without prev_earnings_result fail the column count
// check instead of silently misaligning.
const scanColumnCount = 10

// scanRow keeps every field as text so each conversion failure can be
// reported with the exact offending line.
type scanRow struct {
	Symbol             string `csv:"symbol"`
	Wins               string `csv:"wins"`
	Losses             string `csv:"losses"`
	WinRate            string `csv:"win_rate"`
	AvgTradeReturn     string `csv:"avg_trade_return"`
	TotalReturn        string `csv:"total_return"`
	BacktestLength     string `csv:"backtest_length"`
	NextEarnings       string `csv:"next_earnings"`
	PrevEarningsResult string `csv:"prev_earnings_result"`
	Strategy           string `csv:"strategy"`
}

type ScanResultRepository interface {
	List(path string) ([]domain.InputRecord, error)
}

type ScanResultRepositoryHandler struct{}

func NewScanResultRepository() ScanResultRepository {
	return ScanResultRepositoryHandler{}
}

// List reads the scanner export. The file is header-less; a first
// line starting with the literal column name "symbol" is treated as a
// header and skipped.
func (h ScanResultRepositoryHandler) List(path string) ([]domain.InputRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scan export: %w", err)
	}

	headerLines := 0
	if bytes.HasPrefix(raw, []byte("symbol,")) {
		if idx := bytes.IndexByte(raw, '\n'); idx >= 0 {
			raw = raw[idx+1:]
		} else {
			raw = nil
		}
		headerLines = 1
	}

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		reader := csv.NewReader(in)
		reader.FieldsPerRecord = scanColumnCount
		return reader
	})

	rows := []scanRow{}
	if len(raw) > 0 {
		if err := gocsv.UnmarshalWithoutHeaders(bytes.NewReader(raw), &rows); err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, &domain.SchemaError{
					Line:   parseErr.Line + headerLines,
					Reason: "malformed row",
					Err:    parseErr.Err,
				}
			}
			return nil, fmt.Errorf("failed to parse scan export: %w", err)
		}
	}

	records := make([]domain.InputRecord, 0, len(rows))
	for i, row := range rows {
		record, err := convertScanRow(row, i+1+headerLines)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func convertScanRow(row scanRow, line int) (domain.InputRecord, error) {
	var record domain.InputRecord

	record.Symbol = strings.ToUpper(strings.TrimSpace(row.Symbol))
	if record.Symbol == "" {
		return record, &domain.SchemaError{Line: line, Reason: "symbol is empty"}
	}

	wins, err := parseCount(row.Wins)
	if err != nil {
		return record, &domain.SchemaError{Line: line, Reason: "wins", Err: err}
	}
	losses, err := parseCount(row.Losses)
	if err != nil {
		return record, &domain.SchemaError{Line: line, Reason: "losses", Err: err}
	}
	backtestLength, err := parseCount(row.BacktestLength)
	if err != nil {
		return record, &domain.SchemaError{Line: line, Reason: "backtest_length", Err: err}
	}
	record.Wins = wins
	record.Losses = losses
	record.BacktestLength = backtestLength

	// The win_rate field is trusted as exported; it is never
	// recomputed from wins/losses.
	record.WinRate, err = decimal.NewFromString(strings.TrimSpace(row.WinRate))
	if err != nil {
		return record, &domain.SchemaError{Line: line, Reason: "win_rate", Err: err}
	}
	if record.WinRate.IsNegative() || record.WinRate.GreaterThan(decimal.NewFromInt(1)) {
		return record, &domain.SchemaError{
			Line:   line,
			Reason: fmt.Sprintf("win_rate %s is not a fraction in [0,1]", record.WinRate),
		}
	}

	record.AvgTradeReturn, err = decimal.NewFromString(strings.TrimSpace(row.AvgTradeReturn))
	if err != nil {
		return record, &domain.SchemaError{Line: line, Reason: "avg_trade_return", Err: err}
	}
	record.TotalReturn, err = decimal.NewFromString(strings.TrimSpace(row.TotalReturn))
	if err != nil {
		return record, &domain.SchemaError{Line: line, Reason: "total_return", Err: err}
	}

	record.NextEarnings, err = util.ParseDate(strings.TrimSpace(row.NextEarnings))
	if err != nil {
		return record, &domain.DateParseError{
			Context: fmt.Sprintf("line %d: next_earnings", line),
			Value:   row.NextEarnings,
			Err:     err,
		}
	}

	if prev := strings.TrimSpace(row.PrevEarningsResult); prev != "" {
		result, err := domain.ParseEarningsResult(prev)
		if err != nil {
			return record, &domain.SchemaError{Line: line, Reason: "prev_earnings_result", Err: err}
		}
		record.PrevEarningsResult = &result
	}

	record.Strategy = domain.Strategy(strings.TrimSpace(row.Strategy))

	return record, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%d is negative", n)
	}
	return n, nil
}
