package stats

import (
	"fmt"
	"math"

	"statlab/domain/core"
)

// ============================================================================
// TEST IDENTIFICATION
// ============================================================================

// TestType identifies the statistical procedure that produced a result
// record. Every record is stamped so serialized output is self-describing.
type TestType string

const (
	TestDescriptive TestType = "descriptive"   // Group-wise summary statistics
	TestChiSquare   TestType = "chi_square"    // Chi-square test of independence
	TestTTest       TestType = "ttest"         // Pooled two-sample t-test
	TestANOVA       TestType = "anova"         // One-way analysis of variance
	TestTukeyHSD    TestType = "tukey_hsd"     // Tukey honestly-significant-difference
	TestGridFit     TestType = "grid_line_fit" // Exhaustive slope/intercept search
)

// ValidateAlpha checks a significance threshold. The open interval (0,1);
// the endpoints would make every (or no) test significant.
func ValidateAlpha(alpha float64) error {
	if math.IsNaN(alpha) || alpha <= 0 || alpha >= 1 {
		return core.NewConfigError("alpha", fmt.Sprintf("must be in (0,1), got %v", alpha))
	}
	return nil
}

// ============================================================================
// RESULT RECORDS (plain, caller-serializable)
// ============================================================================

// DescriptiveRow summarizes one group of a numeric column
type DescriptiveRow struct {
	Test   TestType `json:"test"`
	Group  string   `json:"group"` // Group key label; "" for the whole dataset
	Count  int      `json:"count"`
	Mean   float64  `json:"mean"`
	StdDev float64  `json:"std_dev"` // Sample standard deviation (n-1 divisor)
	Median float64  `json:"median"`
	Mode   float64  `json:"mode"` // First value reaching the max frequency
	MAD    float64  `json:"mad"`  // Mean absolute deviation
	Min    float64  `json:"min"`
	Max    float64  `json:"max"`
}

// ChiSquareResult is the output of the independence test, including the
// table it was computed from for auditability.
type ChiSquareResult struct {
	Test        TestType    `json:"test"`
	Statistic   float64     `json:"statistic"`
	DF          int         `json:"degrees_freedom"`
	PValue      float64     `json:"p_value"`
	Alpha       float64     `json:"alpha"`
	Significant bool        `json:"significant"`
	RowLevels   []string    `json:"row_levels"`
	ColLevels   []string    `json:"col_levels"`
	Observed    [][]int     `json:"observed"`
	Expected    [][]float64 `json:"expected"`
}

// TTestResult is the output of the pooled two-sample t-test
type TTestResult struct {
	Test        TestType `json:"test"`
	Statistic   float64  `json:"statistic"`
	DF          int      `json:"degrees_freedom"`
	PValue      float64  `json:"p_value"`
	Alpha       float64  `json:"alpha"`
	Significant bool     `json:"significant"`
	MeanA       float64  `json:"mean_a"`
	MeanB       float64  `json:"mean_b"`
	LabelA      string   `json:"label_a"`
	LabelB      string   `json:"label_b"`
}

// AnovaResult is the output of the one-way F test
type AnovaResult struct {
	Test         TestType `json:"test"`
	Statistic    float64  `json:"statistic"`
	DFBetween    int      `json:"df_between"`
	DFWithin     int      `json:"df_within"`
	SSBetween    float64  `json:"ss_between"`
	SSWithin     float64  `json:"ss_within"`
	MeanSqWithin float64  `json:"mean_sq_within"`
	PValue       float64  `json:"p_value"`
	Alpha        float64  `json:"alpha"`
	Significant  bool     `json:"significant"`
	Groups       []string `json:"groups"`
}

// PairwiseComparison is one row of the Tukey HSD table
type PairwiseComparison struct {
	GroupA    string  `json:"group_a"`
	GroupB    string  `json:"group_b"`
	MeanDiff  float64 `json:"mean_diff"` // mean(B) - mean(A)
	Lower     float64 `json:"lower"`     // Studentized-range-adjusted CI
	Upper     float64 `json:"upper"`
	PAdjusted float64 `json:"p_adjusted"`
	Reject    bool    `json:"reject"`
}

// TukeyResult is the full post-hoc pairwise table at a family-wise alpha
type TukeyResult struct {
	Test        TestType             `json:"test"`
	Alpha       float64              `json:"alpha"` // Family-wise, not per-pair
	QCritical   float64              `json:"q_critical"`
	DFWithin    int                  `json:"df_within"`
	Comparisons []PairwiseComparison `json:"comparisons"`
}

// FitResult is the argmin over the bounded search grid, never an analytic
// least-squares solution.
type FitResult struct {
	Test       TestType `json:"test"`
	Slope      float64  `json:"best_m"`
	Intercept  float64  `json:"best_b"`
	TotalError float64  `json:"smallest_error"` // Sum of absolute residuals
	RSquared   float64  `json:"r_squared"`
	Equation   string   `json:"equation"`
	GridPoints int      `json:"grid_points"` // Candidates enumerated
}

func validatePValue(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("p-value must be in [0,1], got %v", p)
	}
	return nil
}

// Validate checks ChiSquareResult invariants
func (r ChiSquareResult) Validate() error {
	if r.DF < 1 {
		return fmt.Errorf("degrees of freedom must be >= 1, got %d", r.DF)
	}
	return validatePValue(r.PValue)
}

// Validate checks TTestResult invariants
func (r TTestResult) Validate() error {
	if r.DF < 1 {
		return fmt.Errorf("degrees of freedom must be >= 1, got %d", r.DF)
	}
	return validatePValue(r.PValue)
}

// Validate checks AnovaResult invariants
func (r AnovaResult) Validate() error {
	if r.DFBetween < 1 || r.DFWithin < 1 {
		return fmt.Errorf("degrees of freedom must be >= 1, got (%d,%d)", r.DFBetween, r.DFWithin)
	}
	return validatePValue(r.PValue)
}
