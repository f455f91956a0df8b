// Package describe computes group-wise summary statistics over a Dataset
// View: count, mean, sample standard deviation, median, mode and mean
// absolute deviation. Group ordering follows the stable total order over
// group keys, so identical input yields identical output.
package describe

import (
	"math"

	"github.com/montanaflynn/stats"

	"statlab/domain/core"
	"statlab/domain/dataset"
	domstats "statlab/domain/stats"
)

// Describe summarizes a numeric column per group. With no grouping columns
// the whole view is summarized as a single row with an empty group label.
func Describe(v *dataset.View, numericColumn string, groupColumns ...string) ([]domstats.DescriptiveRow, error) {
	values, err := v.Float64Column(numericColumn)
	if err != nil {
		return nil, err
	}
	groups, err := v.GroupBy(groupColumns...)
	if err != nil {
		return nil, err
	}

	rows := make([]domstats.DescriptiveRow, len(groups))
	for i, g := range groups {
		obs := make([]float64, len(g.Rows))
		for j, rowIdx := range g.Rows {
			obs[j] = values[rowIdx]
		}
		row, err := Summarize(obs)
		if err != nil {
			return nil, core.NewInsufficientDataError("group "+g.Key.Label(), len(obs), 1)
		}
		row.Group = g.Key.Label()
		rows[i] = row
	}
	return rows, nil
}

// Summarize computes the summary statistics of one numeric sample.
// An empty sample is an error, never a row of zeros.
func Summarize(obs []float64) (domstats.DescriptiveRow, error) {
	if len(obs) == 0 {
		return domstats.DescriptiveRow{}, core.NewInsufficientDataError("sample", 0, 1)
	}

	mean, _ := stats.Mean(obs)
	median, _ := stats.Median(obs)
	min, _ := stats.Min(obs)
	max, _ := stats.Max(obs)

	// Sample standard deviation (n-1 divisor); defined as 0 for n=1.
	sd := 0.0
	if len(obs) > 1 {
		sd, _ = stats.StandardDeviationSample(obs)
	}

	return domstats.DescriptiveRow{
		Test:   domstats.TestDescriptive,
		Count:  len(obs),
		Mean:   mean,
		StdDev: sd,
		Median: median,
		Mode:   firstMode(obs),
		MAD:    meanAbsoluteDeviation(obs, mean),
		Min:    min,
		Max:    max,
	}, nil
}

// firstMode returns the first value reaching the maximum frequency, ties
// broken by first occurrence in sample order. montanaflynn's Mode returns
// a sorted multi-mode slice, which loses that tie-break.
func firstMode(obs []float64) float64 {
	counts := make(map[float64]int, len(obs))
	for _, x := range obs {
		counts[x]++
	}
	best := obs[0]
	bestCount := 0
	for _, x := range obs {
		if counts[x] > bestCount {
			best = x
			bestCount = counts[x]
		}
	}
	return best
}

// meanAbsoluteDeviation is the average distance from the mean; not the
// median absolute deviation montanaflynn ships.
func meanAbsoluteDeviation(obs []float64, mean float64) float64 {
	sum := 0.0
	for _, x := range obs {
		sum += math.Abs(x - mean)
	}
	return sum / float64(len(obs))
}
