package contingency

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"statlab/domain/core"
	"statlab/domain/dataset"
	"statlab/domain/stats"
)

// TestIndependence runs the chi-square test of independence over a table.
// Expected counts come from the marginals; a zero expected cell or a table
// with a single row or column is untestable and fails rather than divides
// by zero. Alpha is the caller's significance threshold, validated here.
func TestIndependence(t *Table, alpha float64) (*stats.ChiSquareResult, error) {
	if err := stats.ValidateAlpha(alpha); err != nil {
		return nil, err
	}
	if t.Rows() < 2 || t.Cols() < 2 {
		return nil, core.NewDegenerateTableError(
			fmt.Sprintf("%dx%d table has no independence to test", t.Rows(), t.Cols()))
	}

	rowTotals, colTotals, grand := t.Marginals()
	if grand == 0 {
		return nil, core.NewDegenerateTableError("table is empty")
	}

	statistic := 0.0
	expected := make([][]float64, t.Rows())
	for i := range expected {
		expected[i] = make([]float64, t.Cols())
		for j := range expected[i] {
			exp := float64(rowTotals[i]) * float64(colTotals[j]) / float64(grand)
			if exp == 0 {
				return nil, core.NewDegenerateTableError(
					fmt.Sprintf("expected count is 0 at cell (%s, %s)", t.RowLevels[i], t.ColLevels[j]))
			}
			expected[i][j] = exp
			diff := float64(t.Counts[i][j]) - exp
			statistic += diff * diff / exp
		}
	}

	df := (t.Rows() - 1) * (t.Cols() - 1)
	chi := distuv.ChiSquared{K: float64(df)}
	pValue := chi.Survival(statistic)

	return &stats.ChiSquareResult{
		Test:        stats.TestChiSquare,
		Statistic:   statistic,
		DF:          df,
		PValue:      pValue,
		Alpha:       alpha,
		Significant: pValue < alpha,
		RowLevels:   t.RowLevels,
		ColLevels:   t.ColLevels,
		Observed:    t.Counts,
		Expected:    expected,
	}, nil
}

// TestColumns builds the table from two categorical columns and tests it in
// one call, the shape every original analysis used.
func TestColumns(v *dataset.View, columnA, columnB string, alpha float64) (*stats.ChiSquareResult, error) {
	table, err := BuildTable(v, columnA, columnB)
	if err != nil {
		return nil, err
	}
	return TestIndependence(table, alpha)
}
