package meancomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Critical values from published studentized range tables at alpha = 0.05.
func TestStudentizedRangeQuantileAgainstTables(t *testing.T) {
	cases := []struct {
		k, v int
		want float64
	}{
		{2, 10, 3.151},
		{3, 10, 3.877},
		{3, 6, 4.339},
		{4, 20, 3.958},
	}
	for _, tc := range cases {
		got := StudentizedRangeQuantile(0.95, tc.k, tc.v)
		assert.InDelta(t, tc.want, got, 5e-3, "q(0.95, k=%d, v=%d)", tc.k, tc.v)
	}
}

func TestStudentizedRangeLargeDFMatchesInfinityRow(t *testing.T) {
	got := StudentizedRangeQuantile(0.95, 3, 100000)
	assert.InDelta(t, 3.314, got, 1e-2)
}

func TestStudentizedRangeCDFBasics(t *testing.T) {
	assert.Equal(t, 0.0, StudentizedRangeCDF(0, 3, 10))
	assert.Equal(t, 0.0, StudentizedRangeCDF(-1, 3, 10))
	assert.Equal(t, 0.0, StudentizedRangeCDF(2, 1, 10))

	// Monotone in q.
	prev := 0.0
	for _, q := range []float64{0.5, 1, 2, 3, 4, 6, 10} {
		p := StudentizedRangeCDF(q, 3, 10)
		assert.GreaterOrEqual(t, p, prev, "CDF must not decrease at q=%v", q)
		assert.LessOrEqual(t, p, 1.0)
		prev = p
	}
	assert.Greater(t, prev, 0.999)
}

func TestStudentizedRangeQuantileInvertsCDF(t *testing.T) {
	for _, p := range []float64{0.5, 0.9, 0.95, 0.99} {
		q := StudentizedRangeQuantile(p, 3, 12)
		assert.InDelta(t, p, StudentizedRangeCDF(q, 3, 12), 1e-6, "round trip at p=%v", p)
	}
}

// More groups widen the range, more degrees of freedom tighten the scale
// estimate, so the critical value moves accordingly.
func TestStudentizedRangeQuantileMonotonicity(t *testing.T) {
	assert.Greater(t,
		StudentizedRangeQuantile(0.95, 4, 10),
		StudentizedRangeQuantile(0.95, 3, 10))
	assert.Greater(t,
		StudentizedRangeQuantile(0.95, 3, 6),
		StudentizedRangeQuantile(0.95, 3, 30))
}
