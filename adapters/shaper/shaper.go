// Package shaper flattens analysis reports into the fixed JSON payloads the
// dashboard pages consume. Each page has one shape; the shaper never
// computes statistics, it only rearranges report fields.
package shaper

import (
	"fmt"

	json "github.com/goccy/go-json"

	"statlab/adapters/stats/engine"
	"statlab/adapters/stats/gridfit"
	"statlab/domain/core"
	"statlab/domain/stats"
)

// ============================================================================
// SHARED BLOCKS
// ============================================================================

// GroupSummary is the mean/std/count triple every page repeats per group
type GroupSummary struct {
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Count int     `json:"count"`
}

// TestSummary is the statistic/p/significant triple shared by the pages
type TestSummary struct {
	Statistic   float64 `json:"statistic"`
	PValue      float64 `json:"p_value"`
	Significant bool    `json:"significant"`
}

func groupSummaries(rows []stats.DescriptiveRow) map[string]GroupSummary {
	out := make(map[string]GroupSummary, len(rows))
	for _, row := range rows {
		out[row.Group] = GroupSummary{Mean: row.Mean, Std: row.StdDev, Count: row.Count}
	}
	return out
}

// ============================================================================
// FAMILIAR PAGE
// ============================================================================

// FamiliarPage is the lifespan-and-iron payload
type FamiliarPage struct {
	ReportID      core.ReportID             `json:"report_id"`
	LifespanStats map[string]GroupSummary   `json:"lifespan_stats"`
	LifespanTest  TestSummary               `json:"lifespan_test"`
	IronCounts    map[string]map[string]int `json:"iron_distribution"`
	IronTest      TestSummary               `json:"iron_test"`
	TotalSamples  int                       `json:"total_samples"`
}

// ShapeFamiliar builds the familiar page from two battery runs: one over the
// lifespan dataset (descriptives plus t-test) and one over the iron dataset
// (chi-square).
func ShapeFamiliar(lifespan, iron *engine.BatteryReport) (*FamiliarPage, error) {
	if lifespan.TTest == nil {
		return nil, fmt.Errorf("lifespan report is missing the mean comparison")
	}
	if iron.ChiSquare == nil {
		return nil, fmt.Errorf("iron report is missing the independence test")
	}

	page := &FamiliarPage{
		ReportID:      lifespan.ID,
		LifespanStats: groupSummaries(lifespan.Descriptives),
		LifespanTest: TestSummary{
			Statistic:   lifespan.TTest.Statistic,
			PValue:      lifespan.TTest.PValue,
			Significant: lifespan.TTest.Significant,
		},
		IronCounts: countsByLevel(iron.ChiSquare),
		IronTest: TestSummary{
			Statistic:   iron.ChiSquare.Statistic,
			PValue:      iron.ChiSquare.PValue,
			Significant: iron.ChiSquare.Significant,
		},
		TotalSamples: lifespan.Rows,
	}
	return page, nil
}

// countsByLevel rebuilds the observed table as nested row -> col -> count
func countsByLevel(cs *stats.ChiSquareResult) map[string]map[string]int {
	out := make(map[string]map[string]int, len(cs.RowLevels))
	for i, row := range cs.RowLevels {
		cols := make(map[string]int, len(cs.ColLevels))
		for j, col := range cs.ColLevels {
			cols[col] = cs.Observed[i][j]
		}
		out[row] = cols
	}
	return out
}

// ============================================================================
// FETCHMAKER PAGE
// ============================================================================

// FetchmakerPage is the adoption-profile payload
type FetchmakerPage struct {
	ReportID         core.ReportID             `json:"report_id"`
	WeightByBreed    map[string]GroupSummary   `json:"weight_by_breed"`
	WeightComparison *TestSummary              `json:"weight_comparison,omitempty"`
	Pairwise         []stats.PairwiseComparison `json:"pairwise,omitempty"`
	FlagCounts       map[string]map[string]int `json:"flag_distribution,omitempty"`
	FlagTest         *TestSummary              `json:"flag_test,omitempty"`
	TotalDogs        int                       `json:"total_dogs"`
}

// ShapeFetchmaker builds the fetchmaker page from one battery run over the
// dog dataset. Whichever mean comparison the battery chose is surfaced;
// the pairwise table appears only when Tukey ran.
func ShapeFetchmaker(report *engine.BatteryReport) (*FetchmakerPage, error) {
	page := &FetchmakerPage{
		ReportID:      report.ID,
		WeightByBreed: groupSummaries(report.Descriptives),
		TotalDogs:     report.Rows,
	}
	switch {
	case report.Anova != nil:
		page.WeightComparison = &TestSummary{
			Statistic:   report.Anova.Statistic,
			PValue:      report.Anova.PValue,
			Significant: report.Anova.Significant,
		}
		if report.Tukey != nil {
			page.Pairwise = report.Tukey.Comparisons
		}
	case report.TTest != nil:
		page.WeightComparison = &TestSummary{
			Statistic:   report.TTest.Statistic,
			PValue:      report.TTest.PValue,
			Significant: report.TTest.Significant,
		}
	default:
		return nil, fmt.Errorf("fetchmaker report is missing the mean comparison")
	}
	if report.ChiSquare != nil {
		page.FlagCounts = countsByLevel(report.ChiSquare)
		page.FlagTest = &TestSummary{
			Statistic:   report.ChiSquare.Statistic,
			PValue:      report.ChiSquare.PValue,
			Significant: report.ChiSquare.Significant,
		}
	}
	return page, nil
}

// ============================================================================
// REGRESSION PAGE
// ============================================================================

// RegressionPage is the line-fit payload, including the fitted line sampled
// one unit past each end of the x range for plotting.
type RegressionPage struct {
	ReportID    core.ReportID   `json:"report_id"`
	Points      []gridfit.Point `json:"datapoints"`
	BestLine    stats.FitResult `json:"best_line"`
	LineX       []float64       `json:"line_x"`
	LineY       []float64       `json:"line_y"`
	Predictions []float64       `json:"predictions"`
	TotalPoints int             `json:"total_points"`
}

// ShapeRegression builds the regression page from a battery run that
// included a fit, plus the points the fit was computed over.
func ShapeRegression(report *engine.BatteryReport, points []gridfit.Point) (*RegressionPage, error) {
	if report.Fit == nil {
		return nil, fmt.Errorf("report is missing the line fit")
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no points to shape")
	}

	fit := report.Fit
	xMin, xMax := points[0].X, points[0].X
	for _, p := range points[1:] {
		if p.X < xMin {
			xMin = p.X
		}
		if p.X > xMax {
			xMax = p.X
		}
	}

	var lineX, lineY []float64
	for x := int(xMin) - 1; x <= int(xMax)+1; x++ {
		lineX = append(lineX, float64(x))
		lineY = append(lineY, fit.Slope*float64(x)+fit.Intercept)
	}
	predictions := make([]float64, len(points))
	for i, p := range points {
		predictions[i] = fit.Slope*p.X + fit.Intercept
	}

	return &RegressionPage{
		ReportID:    report.ID,
		Points:      points,
		BestLine:    *fit,
		LineX:       lineX,
		LineY:       lineY,
		Predictions: predictions,
		TotalPoints: len(points),
	}, nil
}

// ============================================================================
// SERIALIZATION
// ============================================================================

// Marshal renders any page payload as indented JSON
func Marshal(page any) ([]byte, error) {
	return json.MarshalIndent(page, "", "  ")
}
