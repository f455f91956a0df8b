// Package meancomp compares group means: pooled two-sample t-test, one-way
// ANOVA, and Tukey's honestly-significant-difference post-hoc comparison.
//
// Variance policy: the two-sample test is the pooled equal-variance t-test
// with n1+n2-2 degrees of freedom, matching the reference analyses. This is
// a documented default; it does not switch per call site.
package meancomp

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"statlab/domain/core"
	"statlab/domain/dataset"
	"statlab/domain/stats"
)

// TwoSampleTTest runs the pooled two-sample t-test with a two-tailed
// p-value. Either sample with fewer than 2 observations fails: the variance
// is undefined and no p-value is fabricated.
func TwoSampleTTest(a, b dataset.Sample, alpha float64) (*stats.TTestResult, error) {
	if err := stats.ValidateAlpha(alpha); err != nil {
		return nil, err
	}
	if a.Len() < 2 {
		return nil, core.NewInsufficientDataError("sample "+a.Label, a.Len(), 2)
	}
	if b.Len() < 2 {
		return nil, core.NewInsufficientDataError("sample "+b.Label, b.Len(), 2)
	}

	n1 := float64(a.Len())
	n2 := float64(b.Len())
	mean1 := mean(a.Values)
	mean2 := mean(b.Values)
	var1 := sampleVariance(a.Values, mean1)
	var2 := sampleVariance(b.Values, mean2)

	df := a.Len() + b.Len() - 2
	pooled := ((n1-1)*var1 + (n2-1)*var2) / float64(df)
	se := pooled * (1/n1 + 1/n2)
	if se == 0 {
		return nil, core.NewInsufficientDataError("pooled variance", 0, 1)
	}
	t := (mean1 - mean2) / math.Sqrt(se)

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	pValue := 2 * dist.Survival(math.Abs(t))

	return &stats.TTestResult{
		Test:        stats.TestTTest,
		Statistic:   t,
		DF:          df,
		PValue:      pValue,
		Alpha:       alpha,
		Significant: pValue < alpha,
		MeanA:       mean1,
		MeanB:       mean2,
		LabelA:      a.Label,
		LabelB:      b.Label,
	}, nil
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func sampleVariance(xs []float64, mean float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}
	return sum / float64(len(xs)-1)
}
