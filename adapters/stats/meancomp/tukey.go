package meancomp

import (
	"math"

	"statlab/domain/core"
	"statlab/domain/dataset"
	"statlab/domain/stats"
)

// TukeyHSD runs the honestly-significant-difference comparison over every
// unordered pair of the given samples, controlling the family-wise error
// rate at alpha via the studentized range distribution. This is the point
// of the procedure: it is not a loop of unadjusted two-sample t-tests.
//
// Samples are expected to be the same groups that passed a one-way ANOVA;
// the within-group mean square and its degrees of freedom are recomputed
// here so the call stands alone.
func TukeyHSD(samples []dataset.Sample, alpha float64) (*stats.TukeyResult, error) {
	if err := stats.ValidateAlpha(alpha); err != nil {
		return nil, err
	}
	k := len(samples)
	if k < 2 {
		return nil, core.NewInsufficientGroupsError(k, 2)
	}

	total := 0
	for _, s := range samples {
		if s.Len() == 0 {
			return nil, core.NewInsufficientDataError("group "+s.Label, 0, 1)
		}
		total += s.Len()
	}
	dfWithin := total - k
	if dfWithin < 1 {
		return nil, core.NewInsufficientDataError("observations beyond group count", dfWithin, 1)
	}

	means := make([]float64, k)
	ssWithin := 0.0
	for i, s := range samples {
		means[i] = mean(s.Values)
		for _, x := range s.Values {
			d := x - means[i]
			ssWithin += d * d
		}
	}
	msWithin := ssWithin / float64(dfWithin)
	if msWithin == 0 {
		return nil, core.NewInsufficientDataError("within-group variance", 0, 1)
	}

	qCrit := StudentizedRangeQuantile(1-alpha, k, dfWithin)

	comparisons := make([]stats.PairwiseComparison, 0, k*(k-1)/2)
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			ni := float64(samples[i].Len())
			nj := float64(samples[j].Len())
			// Tukey-Kramer standard error for unequal group sizes.
			se := math.Sqrt(msWithin / 2 * (1/ni + 1/nj))
			diff := means[j] - means[i]
			q := math.Abs(diff) / se
			pAdj := 1 - StudentizedRangeCDF(q, k, dfWithin)
			half := qCrit * se
			comparisons = append(comparisons, stats.PairwiseComparison{
				GroupA:    samples[i].Label,
				GroupB:    samples[j].Label,
				MeanDiff:  diff,
				Lower:     diff - half,
				Upper:     diff + half,
				PAdjusted: pAdj,
				Reject:    pAdj < alpha,
			})
		}
	}

	return &stats.TukeyResult{
		Test:        stats.TestTukeyHSD,
		Alpha:       alpha,
		QCritical:   qCrit,
		DFWithin:    dfWithin,
		Comparisons: comparisons,
	}, nil
}
