package app

import (
	"earnsched/internal"
	"earnsched/internal/calculator"
	"earnsched/internal/domain"
	"earnsched/internal/repository"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// PlanHandler wires the pipeline: scan export -> row filter ->
// schedule resolver -> aggregator -> report, with an optional raw
// dump of the pre-aggregation trade set.
type PlanHandler struct {
	ScanRepository    repository.ScanResultRepository
	Filter            internal.RowFilter
	Resolver          internal.ScheduleResolver
	ReportRepository  repository.ReportRepository
	RawDumpRepository repository.RawDumpRepository
	Logger            *zap.SugaredLogger
}

type PlanInput struct {
	InputPath string
	Mode      domain.SelectionMode
	// OutputPath empty means stdout.
	OutputPath string
	// SaveRawPath empty disables the raw dump side channel.
	SaveRawPath string
}

// Run executes one scheduling run. Any failure aborts before the
// report sink is opened, so a failed run never leaves partial output
// behind.
func (h PlanHandler) Run(input PlanInput) error {
	records, err := h.ScanRepository.List(input.InputPath)
	if err != nil {
		return err
	}

	trades := []domain.ScheduledTrade{}
	for _, record := range records {
		ok, err := h.Filter.Matches(record)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		trade, err := h.Resolver.Resolve(record)
		if err != nil {
			return err
		}
		trades = append(trades, trade)
	}

	if input.SaveRawPath != "" {
		if err := h.RawDumpRepository.Save(input.SaveRawPath, input.Mode, trades); err != nil {
			return err
		}
	}

	aggregated := internal.Aggregate(trades, input.Mode)

	summary, err := calculator.Summarize(aggregated)
	if err != nil {
		return err
	}

	h.Logger.Infow("resolved schedule",
		"rows", len(records),
		"qualifying", len(trades),
		"emitted", len(aggregated),
		"mode", input.Mode.String(),
	)

	if input.OutputPath == "" {
		return h.ReportRepository.Write(os.Stdout, aggregated, summary)
	}

	f, err := os.Create(input.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to open output %s: %w", input.OutputPath, err)
	}
	if err := h.ReportRepository.Write(f, aggregated, summary); err != nil {
		f.Close()
		return err
	}
	// A buffered write can surface its failure only at close.
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output %s: %w", input.OutputPath, err)
	}

	return nil
}
