package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"statlab/domain/core"
)

func TestValidateAlpha(t *testing.T) {
	for _, alpha := range []float64{0.001, 0.05, 0.5, 0.999} {
		assert.NoError(t, ValidateAlpha(alpha), "alpha=%v", alpha)
	}
	for _, alpha := range []float64{0, 1, -0.1, 1.5, math.NaN()} {
		err := ValidateAlpha(alpha)
		assert.True(t, core.IsConfigError(err), "alpha=%v should fail, got %v", alpha, err)
	}
}

func TestResultValidate(t *testing.T) {
	ok := ChiSquareResult{DF: 1, PValue: 0.5}
	assert.NoError(t, ok.Validate())
	assert.Error(t, ChiSquareResult{DF: 0, PValue: 0.5}.Validate())
	assert.Error(t, ChiSquareResult{DF: 1, PValue: 1.5}.Validate())

	assert.NoError(t, TTestResult{DF: 8, PValue: 0.09}.Validate())
	assert.Error(t, TTestResult{DF: 8, PValue: math.NaN()}.Validate())

	assert.NoError(t, AnovaResult{DFBetween: 2, DFWithin: 6, PValue: 0.125}.Validate())
	assert.Error(t, AnovaResult{DFBetween: 0, DFWithin: 6, PValue: 0.125}.Validate())
}
