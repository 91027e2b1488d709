package main

import (
	"earnsched/internal"
	"earnsched/internal/app"
	"earnsched/internal/catalog"
	"earnsched/internal/domain"
	"earnsched/internal/logger"
	"earnsched/internal/repository"
	"earnsched/internal/util"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	log := logger.New()
	defer log.Sync()

	cmd := newRootCmd(log)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(log *zap.SugaredLogger) *cobra.Command {
	var (
		allFlag     bool
		bestFlag    bool
		preFlag     bool
		postFlag    bool
		strategyIDs []string
		startFlag   string
		endFlag     string
		outputPath  string
		saveRawPath string
		offsetsPath string
		tradingDays bool
	)

	cmd := &cobra.Command{
		Use:   "earnsched <input>",
		Short: "Turn scanner backtest results into scheduled earnings trades",
		Long: `earnsched reads a scanner's backtest export (one CSV row per
symbol+strategy), maps each strategy to concrete entry and exit dates
around the next earnings announcement, filters and ranks the results,
and prints a report.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if preFlag && postFlag {
				return fmt.Errorf("--pre and --post are mutually exclusive")
			}

			mode, err := internal.ResolveSelectionMode(allFlag, bestFlag, postFlag)
			if err != nil {
				return err
			}

			cat := catalog.Default()
			if offsetsPath != "" {
				if err := cat.ApplyOverrideFile(offsetsPath); err != nil {
					return err
				}
			}

			criteria := internal.FilterCriteria{}
			for _, id := range strategyIDs {
				if _, err := cat.Lookup(domain.Strategy(id)); err != nil {
					return err
				}
				criteria.Strategies = append(criteria.Strategies, domain.Strategy(id))
			}
			if preFlag {
				class := domain.PreEarnings
				criteria.Class = &class
			}
			if postFlag {
				class := domain.PostEarnings
				criteria.Class = &class
			}
			if startFlag != "" {
				start, err := util.ParseDate(startFlag)
				if err != nil {
					return &domain.DateParseError{Context: "--start", Value: startFlag, Err: err}
				}
				criteria.Start = &start
			}
			if endFlag != "" {
				end, err := util.ParseDate(endFlag)
				if err != nil {
					return &domain.DateParseError{Context: "--end", Value: endFlag, Err: err}
				}
				criteria.End = &end
			}

			handler := app.PlanHandler{
				ScanRepository: repository.NewScanResultRepository(),
				Filter: internal.RowFilter{
					Catalog:  cat,
					Criteria: criteria,
				},
				Resolver: internal.ScheduleResolver{
					Catalog:        cat,
					AdjustWeekends: tradingDays,
				},
				ReportRepository:  repository.NewReportRepository(),
				RawDumpRepository: repository.NewRawDumpRepository(),
				Logger:            log,
			}

			return handler.Run(app.PlanInput{
				InputPath:   args[0],
				Mode:        mode,
				OutputPath:  outputPath,
				SaveRawPath: saveRawPath,
			})
		},
	}

	cmd.Flags().BoolVar(&allFlag, "all", false, "emit every qualifying trade per symbol")
	cmd.Flags().BoolVar(&bestFlag, "best", false, "emit only the top-ranked trade per symbol")
	cmd.Flags().BoolVar(&preFlag, "pre", false, "restrict to pre-earnings strategies")
	cmd.Flags().BoolVar(&postFlag, "post", false, "restrict to post-earnings strategies")
	cmd.Flags().StringSliceVarP(&strategyIDs, "strategy", "s", nil, "explicit strategy allow-list (repeatable)")
	cmd.Flags().StringVar(&startFlag, "start", "", "earliest earnings date to include (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&endFlag, "end", "", "latest earnings date to include (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the report here instead of stdout")
	cmd.Flags().StringVar(&saveRawPath, "save-raw", "", "also save the resolved, pre-aggregation trades as JSON")
	cmd.Flags().StringVar(&offsetsPath, "offsets", "", "YAML file overriding the built-in entry/exit day offsets")
	cmd.Flags().BoolVar(&tradingDays, "trading-days", false, "step weekend entry/exit dates back to the prior Friday")

	return cmd
}
