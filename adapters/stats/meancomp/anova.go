package meancomp

import (
	"gonum.org/v1/gonum/stat/distuv"

	"statlab/domain/core"
	"statlab/domain/dataset"
	"statlab/domain/stats"
)

// OneWayANOVA runs the one-way F test over k group-labelled samples.
// Requires k >= 2 groups and at least one observation per group; the
// within-group degrees of freedom N-k must be positive.
func OneWayANOVA(samples []dataset.Sample, alpha float64) (*stats.AnovaResult, error) {
	if err := stats.ValidateAlpha(alpha); err != nil {
		return nil, err
	}
	k := len(samples)
	if k < 2 {
		return nil, core.NewInsufficientGroupsError(k, 2)
	}

	total := 0
	grandSum := 0.0
	for _, s := range samples {
		if s.Len() == 0 {
			return nil, core.NewInsufficientDataError("group "+s.Label, 0, 1)
		}
		total += s.Len()
		for _, x := range s.Values {
			grandSum += x
		}
	}
	dfWithin := total - k
	if dfWithin < 1 {
		return nil, core.NewInsufficientDataError("observations beyond group count", dfWithin, 1)
	}
	grandMean := grandSum / float64(total)

	ssBetween := 0.0
	ssWithin := 0.0
	groups := make([]string, k)
	for i, s := range samples {
		groups[i] = s.Label
		m := mean(s.Values)
		d := m - grandMean
		ssBetween += float64(s.Len()) * d * d
		for _, x := range s.Values {
			e := x - m
			ssWithin += e * e
		}
	}

	dfBetween := k - 1
	msBetween := ssBetween / float64(dfBetween)
	msWithin := ssWithin / float64(dfWithin)
	if msWithin == 0 {
		return nil, core.NewInsufficientDataError("within-group variance", 0, 1)
	}
	f := msBetween / msWithin

	dist := distuv.F{D1: float64(dfBetween), D2: float64(dfWithin)}
	pValue := dist.Survival(f)

	return &stats.AnovaResult{
		Test:         stats.TestANOVA,
		Statistic:    f,
		DFBetween:    dfBetween,
		DFWithin:     dfWithin,
		SSBetween:    ssBetween,
		SSWithin:     ssWithin,
		MeanSqWithin: msWithin,
		PValue:       pValue,
		Alpha:        alpha,
		Significant:  pValue < alpha,
		Groups:       groups,
	}, nil
}
