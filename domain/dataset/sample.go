package dataset

import (
	"fmt"

	"statlab/domain/core"
)

// Sample is an ordered sequence of numeric observations for one group label.
// Mean-comparison tests consume slices of Samples.
type Sample struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// Len returns the number of observations
func (s Sample) Len() int { return len(s.Values) }

// SamplesByGroup extracts one Sample per group of the view, splitting the
// numeric column by the grouping column. Samples come back in the stable
// group order. A group whose rows exist but whose numeric cells are missing
// cannot occur; Float64 extraction fails the whole call instead.
func SamplesByGroup(v *View, numericColumn, groupColumn string) ([]Sample, error) {
	values, err := v.Float64Column(numericColumn)
	if err != nil {
		return nil, err
	}
	groups, err := v.GroupBy(groupColumn)
	if err != nil {
		return nil, err
	}
	samples := make([]Sample, len(groups))
	for i, g := range groups {
		obs := make([]float64, len(g.Rows))
		for j, rowIdx := range g.Rows {
			obs[j] = values[rowIdx]
		}
		if len(obs) == 0 {
			return nil, core.NewInsufficientDataError(fmt.Sprintf("group %q", g.Key.Label()), 0, 1)
		}
		samples[i] = Sample{Label: g.Key.Label(), Values: obs}
	}
	return samples, nil
}
