package meancomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statlab/domain/core"
	"statlab/domain/dataset"
	"statlab/domain/stats"
)

func sample(label string, values ...float64) dataset.Sample {
	return dataset.Sample{Label: label, Values: values}
}

func TestTwoSampleTTestKnownValues(t *testing.T) {
	a := sample("a", 1, 2, 3, 4, 5)
	b := sample("b", 2, 4, 6, 8, 10)

	res, err := TwoSampleTTest(a, b, 0.05)
	require.NoError(t, err)

	assert.Equal(t, stats.TestTTest, res.Test)
	assert.InDelta(t, -1.8973665961010275, res.Statistic, 1e-9)
	assert.Equal(t, 8, res.DF)
	assert.InDelta(t, 0.09434977, res.PValue, 1e-7)
	assert.False(t, res.Significant)
	assert.InDelta(t, 3.0, res.MeanA, 1e-12)
	assert.InDelta(t, 6.0, res.MeanB, 1e-12)
	assert.Equal(t, "a", res.LabelA)
	assert.Equal(t, "b", res.LabelB)
	require.NoError(t, res.Validate())
}

func TestTwoSampleTTestSymmetry(t *testing.T) {
	a := sample("a", 1, 2, 3, 4, 5)
	b := sample("b", 2, 4, 6, 8, 10)

	ab, err := TwoSampleTTest(a, b, 0.05)
	require.NoError(t, err)
	ba, err := TwoSampleTTest(b, a, 0.05)
	require.NoError(t, err)

	assert.InDelta(t, -ba.Statistic, ab.Statistic, 1e-12)
	assert.InDelta(t, ba.PValue, ab.PValue, 1e-12)
}

func TestTwoSampleTTestIdenticalMeans(t *testing.T) {
	res, err := TwoSampleTTest(sample("a", 1, 2, 3), sample("b", 3, 2, 1), 0.05)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.Statistic, 1e-12)
	assert.InDelta(t, 1.0, res.PValue, 1e-12)
	assert.False(t, res.Significant)
}

func TestTwoSampleTTestInsufficientData(t *testing.T) {
	_, err := TwoSampleTTest(sample("a", 1), sample("b", 2, 3), 0.05)
	assert.True(t, core.IsInsufficientData(err), "n=1 left: %v", err)

	_, err = TwoSampleTTest(sample("a", 1, 2), sample("b"), 0.05)
	assert.True(t, core.IsInsufficientData(err), "empty right: %v", err)

	// Both samples constant: pooled variance is zero, no statistic exists.
	_, err = TwoSampleTTest(sample("a", 5, 5, 5), sample("b", 5, 5), 0.05)
	assert.True(t, core.IsInsufficientData(err), "zero variance: %v", err)
}

func TestTwoSampleTTestAlphaValidation(t *testing.T) {
	_, err := TwoSampleTTest(sample("a", 1, 2), sample("b", 3, 4), 0)
	assert.True(t, core.IsConfigError(err), "got %v", err)
}
