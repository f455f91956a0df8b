// Command cli exposes the statistical toolkit: descriptive summaries,
// independence and mean-comparison tests, grid-search line fits, and the
// prebuilt dashboard pages, all printed as JSON.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"statlab/adapters/loader"
	"statlab/adapters/shaper"
	"statlab/adapters/stats/contingency"
	"statlab/adapters/stats/describe"
	"statlab/adapters/stats/engine"
	"statlab/adapters/stats/gridfit"
	"statlab/adapters/stats/meancomp"
	"statlab/app"
	"statlab/domain/dataset"
	"statlab/internal/config"
)

type cliDeps struct {
	cfg     *config.Config
	logger  *zap.Logger
	alpha   float64
	verbose bool
}

func main() {
	deps := &cliDeps{}

	rootCmd := &cobra.Command{
		Use:           "statlab",
		Short:         "Statistical inference toolkit: describe, test, and fit tabular data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			deps.cfg = cfg
			if !cmd.Flags().Changed("alpha") {
				deps.alpha = cfg.Analysis.Alpha
			}
			logger := zap.NewNop()
			if deps.verbose {
				logger, err = zap.NewDevelopment()
				if err != nil {
					return err
				}
			}
			deps.logger = logger
			return nil
		},
	}
	rootCmd.PersistentFlags().Float64Var(&deps.alpha, "alpha", 0.05, "significance threshold in (0,1)")
	rootCmd.PersistentFlags().BoolVarP(&deps.verbose, "verbose", "v", false, "log analysis progress")

	rootCmd.AddCommand(
		newDescribeCmd(deps),
		newIndependenceCmd(deps),
		newCompareCmd(deps),
		newFitCmd(deps),
		newPageCmd(deps),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadView reads the data file named by the flag, or the configured default
func (d *cliDeps) loadView(path string) (*dataset.View, error) {
	if path == "" {
		path = d.cfg.Paths.DataFile
	}
	if path == "" {
		return nil, fmt.Errorf("no input file: pass --file or set STATLAB_DATA_FILE")
	}
	return loader.NewReader(path, d.logger).Read()
}

func printJSON(payload any) error {
	out, err := shaper.Marshal(payload)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func newDescribeCmd(deps *cliDeps) *cobra.Command {
	var file, column, groupBy string

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Summarize a numeric column, optionally per group",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := deps.loadView(file)
			if err != nil {
				return err
			}
			groupCols := []string{}
			if groupBy != "" {
				groupCols = append(groupCols, groupBy)
			}
			rows, err := describe.Describe(v, column, groupCols...)
			if err != nil {
				return err
			}
			return printJSON(rows)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV or XLSX input")
	cmd.Flags().StringVarP(&column, "column", "c", "", "numeric column to summarize")
	cmd.Flags().StringVarP(&groupBy, "group-by", "g", "", "categorical column to group by")
	_ = cmd.MarkFlagRequired("column")
	return cmd
}

func newIndependenceCmd(deps *cliDeps) *cobra.Command {
	var file, factorA, factorB string

	cmd := &cobra.Command{
		Use:   "independence",
		Short: "Chi-square test of independence between two categorical columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := deps.loadView(file)
			if err != nil {
				return err
			}
			res, err := contingency.TestColumns(v, factorA, factorB, deps.alpha)
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV or XLSX input")
	cmd.Flags().StringVarP(&factorA, "rows", "r", "", "row factor column")
	cmd.Flags().StringVarP(&factorB, "cols", "c", "", "column factor column")
	_ = cmd.MarkFlagRequired("rows")
	_ = cmd.MarkFlagRequired("cols")
	return cmd
}

func newCompareCmd(deps *cliDeps) *cobra.Command {
	var file, column, groupBy string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare group means: t-test for two groups, ANOVA plus Tukey HSD for more",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := deps.loadView(file)
			if err != nil {
				return err
			}
			samples, err := dataset.SamplesByGroup(v, column, groupBy)
			if err != nil {
				return err
			}
			if len(samples) == 2 {
				res, err := meancomp.TwoSampleTTest(samples[0], samples[1], deps.alpha)
				if err != nil {
					return err
				}
				return printJSON(res)
			}
			anova, err := meancomp.OneWayANOVA(samples, deps.alpha)
			if err != nil {
				return err
			}
			tukey, err := meancomp.TukeyHSD(samples, deps.alpha)
			if err != nil {
				return err
			}
			return printJSON(map[string]any{"anova": anova, "tukey": tukey})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV or XLSX input")
	cmd.Flags().StringVarP(&column, "column", "c", "", "numeric column to compare")
	cmd.Flags().StringVarP(&groupBy, "group-by", "g", "", "categorical column defining the groups")
	_ = cmd.MarkFlagRequired("column")
	_ = cmd.MarkFlagRequired("group-by")
	return cmd
}

func newFitCmd(deps *cliDeps) *cobra.Command {
	var file, xColumn, yColumn string

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a line by exhaustive grid search over slope and intercept",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := deps.loadView(file)
			if err != nil {
				return err
			}
			analyzer, err := engine.New(deps.alpha, gridFromConfig(deps.cfg), deps.logger)
			if err != nil {
				return err
			}
			report, err := analyzer.Run(context.Background(), v, engine.Request{
				XColumn: xColumn,
				YColumn: yColumn,
			})
			if err != nil {
				return err
			}
			return printJSON(report.Fit)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV or XLSX input")
	cmd.Flags().StringVarP(&xColumn, "x", "x", "", "predictor column")
	cmd.Flags().StringVarP(&yColumn, "y", "y", "", "response column")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")
	return cmd
}

func newPageCmd(deps *cliDeps) *cobra.Command {
	var file, extraFile, xColumn, yColumn string

	cmd := &cobra.Command{
		Use:       "page [familiar|fetchmaker|regression]",
		Short:     "Run a prebuilt end-to-end analysis and print its dashboard payload",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"familiar", "fetchmaker", "regression"},
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := engine.New(deps.alpha, gridFromConfig(deps.cfg), deps.logger)
			if err != nil {
				return err
			}
			service := app.NewAnalysisService(analyzer, deps.cfg.Analysis.Seed, deps.logger)
			ctx := context.Background()

			switch args[0] {
			case "familiar":
				page, err := service.FamiliarAnalysis(ctx, file, extraFile)
				if err != nil {
					return err
				}
				return printJSON(page)
			case "fetchmaker":
				page, err := service.FetchmakerAnalysis(ctx, file)
				if err != nil {
					return err
				}
				return printJSON(page)
			case "regression":
				page, err := service.RegressionAnalysis(ctx, file, xColumn, yColumn)
				if err != nil {
					return err
				}
				return printJSON(page)
			default:
				return fmt.Errorf("unknown page: %s", args[0])
			}
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "primary input file; synthesized when omitted")
	cmd.Flags().StringVar(&extraFile, "iron-file", "", "iron dataset for the familiar page")
	cmd.Flags().StringVar(&xColumn, "x", "year", "predictor column for the regression page")
	cmd.Flags().StringVar(&yColumn, "y", "total_production", "response column for the regression page")
	return cmd
}

func gridFromConfig(cfg *config.Config) gridfit.Config {
	return gridfit.Config{
		SlopeMin:     cfg.Fit.SlopeMin,
		SlopeMax:     cfg.Fit.SlopeMax,
		InterceptMin: cfg.Fit.InterceptMin,
		InterceptMax: cfg.Fit.InterceptMax,
		Step:         cfg.Fit.Step,
	}
}
