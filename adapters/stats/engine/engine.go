// Package engine runs the full battery of analyses over a single dataset
// view and assembles one report. The statistical adapters stay pure; all
// concurrency and logging live here.
package engine

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"statlab/adapters/stats/contingency"
	"statlab/adapters/stats/describe"
	"statlab/adapters/stats/gridfit"
	"statlab/adapters/stats/meancomp"
	"statlab/domain/core"
	"statlab/domain/dataset"
	"statlab/domain/stats"
)

// Request names the columns each analysis should read. Leaving a section's
// columns empty skips that section; at least one section must be requested.
type Request struct {
	// Describe and mean comparison.
	NumericColumn string `json:"numeric_column,omitempty"`
	GroupColumn   string `json:"group_column,omitempty"`

	// Chi-square independence.
	FactorA string `json:"factor_a,omitempty"`
	FactorB string `json:"factor_b,omitempty"`

	// Grid-search line fit.
	XColumn string `json:"x_column,omitempty"`
	YColumn string `json:"y_column,omitempty"`
}

func (r Request) wantsDescribe() bool { return r.NumericColumn != "" }
func (r Request) wantsCompare() bool  { return r.NumericColumn != "" && r.GroupColumn != "" }
func (r Request) wantsChiSquare() bool {
	return r.FactorA != "" && r.FactorB != ""
}
func (r Request) wantsFit() bool { return r.XColumn != "" && r.YColumn != "" }

// BatteryReport collects every analysis that ran. Sections not requested,
// or not applicable (t-test with three groups), stay nil.
type BatteryReport struct {
	ID           core.ReportID          `json:"report_id"`
	Alpha        float64                `json:"alpha"`
	Rows         int                    `json:"rows"`
	Descriptives []stats.DescriptiveRow `json:"descriptives,omitempty"`
	ChiSquare    *stats.ChiSquareResult `json:"chi_square,omitempty"`
	TTest        *stats.TTestResult     `json:"ttest,omitempty"`
	Anova        *stats.AnovaResult     `json:"anova,omitempty"`
	Tukey        *stats.TukeyResult     `json:"tukey,omitempty"`
	Fit          *stats.FitResult       `json:"fit,omitempty"`
}

// Analyzer runs analysis batteries with a fixed alpha and fit grid
type Analyzer struct {
	alpha  float64
	grid   gridfit.Config
	logger *zap.Logger
}

// New creates an analyzer. A nil logger disables logging.
func New(alpha float64, grid gridfit.Config, logger *zap.Logger) (*Analyzer, error) {
	if err := stats.ValidateAlpha(alpha); err != nil {
		return nil, err
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{alpha: alpha, grid: grid, logger: logger}, nil
}

// Run executes every requested analysis concurrently over the view and
// assembles the report. The adapters are pure, so sections only share the
// read-only view; the first failing section aborts the battery.
func (a *Analyzer) Run(ctx context.Context, v *dataset.View, req Request) (*BatteryReport, error) {
	if !req.wantsDescribe() && !req.wantsChiSquare() && !req.wantsFit() {
		return nil, core.NewConfigError("request", "no analysis requested")
	}

	report := &BatteryReport{
		ID:    core.ReportID(core.NewID()),
		Alpha: a.alpha,
		Rows:  v.Len(),
	}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)

	if req.wantsDescribe() {
		g.Go(func() error {
			groupCols := []string{}
			if req.GroupColumn != "" {
				groupCols = append(groupCols, req.GroupColumn)
			}
			rows, err := describe.Describe(v, req.NumericColumn, groupCols...)
			if err != nil {
				return err
			}
			a.logger.Debug("descriptives computed",
				zap.String("report_id", report.ID.String()),
				zap.String("column", req.NumericColumn),
				zap.Int("groups", len(rows)))
			mu.Lock()
			report.Descriptives = rows
			mu.Unlock()
			return nil
		})
	}

	if req.wantsCompare() {
		g.Go(func() error {
			return a.runComparison(ctx, v, req, report, &mu)
		})
	}

	if req.wantsChiSquare() {
		g.Go(func() error {
			res, err := contingency.TestColumns(v, req.FactorA, req.FactorB, a.alpha)
			if err != nil {
				return err
			}
			a.logger.Debug("independence tested",
				zap.String("report_id", report.ID.String()),
				zap.Float64("statistic", res.Statistic),
				zap.Float64("p_value", res.PValue))
			mu.Lock()
			report.ChiSquare = res
			mu.Unlock()
			return nil
		})
	}

	if req.wantsFit() {
		g.Go(func() error {
			points, err := fitPoints(v, req.XColumn, req.YColumn)
			if err != nil {
				return err
			}
			res, err := gridfit.Fit(points, a.grid)
			if err != nil {
				return err
			}
			a.logger.Debug("line fitted",
				zap.String("report_id", report.ID.String()),
				zap.String("equation", res.Equation),
				zap.Int("grid_points", res.GridPoints))
			mu.Lock()
			report.Fit = res
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		a.logger.Error("battery failed",
			zap.String("report_id", report.ID.String()),
			zap.Error(err))
		return nil, err
	}

	a.logger.Info("battery complete",
		zap.String("report_id", report.ID.String()),
		zap.Int("rows", report.Rows))
	return report, nil
}

// runComparison picks the mean-comparison test by group count: a pooled
// t-test for exactly two groups, ANOVA plus Tukey HSD for three or more.
func (a *Analyzer) runComparison(_ context.Context, v *dataset.View, req Request, report *BatteryReport, mu *sync.Mutex) error {
	samples, err := dataset.SamplesByGroup(v, req.NumericColumn, req.GroupColumn)
	if err != nil {
		return err
	}
	if len(samples) < 2 {
		return core.NewInsufficientGroupsError(len(samples), 2)
	}

	if len(samples) == 2 {
		res, err := meancomp.TwoSampleTTest(samples[0], samples[1], a.alpha)
		if err != nil {
			return err
		}
		a.logger.Debug("t-test computed",
			zap.String("report_id", report.ID.String()),
			zap.Float64("statistic", res.Statistic),
			zap.Float64("p_value", res.PValue))
		mu.Lock()
		report.TTest = res
		mu.Unlock()
		return nil
	}

	anova, err := meancomp.OneWayANOVA(samples, a.alpha)
	if err != nil {
		return err
	}
	tukey, err := meancomp.TukeyHSD(samples, a.alpha)
	if err != nil {
		return err
	}
	a.logger.Debug("anova and tukey computed",
		zap.String("report_id", report.ID.String()),
		zap.Float64("f_statistic", anova.Statistic),
		zap.Int("comparisons", len(tukey.Comparisons)))
	mu.Lock()
	report.Anova = anova
	report.Tukey = tukey
	mu.Unlock()
	return nil
}

// fitPoints pairs two numeric columns into fit observations
func fitPoints(v *dataset.View, xColumn, yColumn string) ([]gridfit.Point, error) {
	xs, err := v.Float64Column(xColumn)
	if err != nil {
		return nil, err
	}
	ys, err := v.Float64Column(yColumn)
	if err != nil {
		return nil, err
	}
	points := make([]gridfit.Point, len(xs))
	for i := range xs {
		points[i] = gridfit.Point{X: xs[i], Y: ys[i]}
	}
	return points, nil
}
