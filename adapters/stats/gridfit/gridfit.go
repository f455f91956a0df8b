// Package gridfit finds the best-fit line for a small set of points by
// exhaustive search over a discretized (slope, intercept) grid, minimizing
// total absolute residual. The brute-force enumeration is the point of the
// component: an analytic least-squares fit would return different
// coefficients whenever the grid is coarse, so it is never substituted.
package gridfit

import (
	"fmt"
	"math"

	"statlab/domain/core"
	"statlab/domain/stats"
)

// Point is one (x, y) observation
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Config bounds the search grid. All bounds must be finite, each range must
// satisfy min <= max, and the step must be positive.
type Config struct {
	SlopeMin     float64
	SlopeMax     float64
	InterceptMin float64
	InterceptMax float64
	Step         float64
}

// DefaultConfig is the grid the original analyses searched:
// m in [-10,10], b in [-20,20], step 0.1.
func DefaultConfig() Config {
	return Config{SlopeMin: -10, SlopeMax: 10, InterceptMin: -20, InterceptMax: 20, Step: 0.1}
}

// Validate checks the grid bounds
func (c Config) Validate() error {
	for name, v := range map[string]float64{
		"slope_min": c.SlopeMin, "slope_max": c.SlopeMax,
		"intercept_min": c.InterceptMin, "intercept_max": c.InterceptMax,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return core.NewConfigError(name, "must be finite")
		}
	}
	if c.Step <= 0 || math.IsNaN(c.Step) || math.IsInf(c.Step, 0) {
		return core.NewConfigError("step", fmt.Sprintf("must be > 0, got %v", c.Step))
	}
	if c.SlopeMin > c.SlopeMax {
		return core.NewConfigError("slope range", fmt.Sprintf("lower %v > upper %v", c.SlopeMin, c.SlopeMax))
	}
	if c.InterceptMin > c.InterceptMax {
		return core.NewConfigError("intercept range", fmt.Sprintf("lower %v > upper %v", c.InterceptMin, c.InterceptMax))
	}
	return nil
}

// TotalAbsoluteError is the fit criterion: sum of |m*x + b - y| over points
func TotalAbsoluteError(m, b float64, points []Point) float64 {
	total := 0.0
	for _, p := range points {
		total += math.Abs(m*p.X + b - p.Y)
	}
	return total
}

// Fit enumerates every (m, b) on the grid in ascending-slope-then-
// ascending-intercept order and keeps the strict minimum, so ties resolve
// to the first candidate encountered. That enumeration order is part of the
// contract: repeated runs return bit-identical results.
func Fit(points []Point, cfg Config) (*stats.FitResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(points) < 2 {
		return nil, core.NewInsufficientDataError("points", len(points), 2)
	}

	mSteps := int(math.Round((cfg.SlopeMax - cfg.SlopeMin) / cfg.Step))
	bSteps := int(math.Round((cfg.InterceptMax - cfg.InterceptMin) / cfg.Step))

	// Candidates are integer multiples of the step, scaled once per value.
	// Accumulating min + i*step instead would drift the grid off those
	// multiples and can flip a tie onto a different candidate.
	mBase := math.Round(cfg.SlopeMin / cfg.Step)
	bBase := math.Round(cfg.InterceptMin / cfg.Step)

	bestM := cfg.SlopeMin
	bestB := cfg.InterceptMin
	smallest := math.Inf(1)
	for i := 0; i <= mSteps; i++ {
		m := (mBase + float64(i)) * cfg.Step
		for j := 0; j <= bSteps; j++ {
			b := (bBase + float64(j)) * cfg.Step
			err := TotalAbsoluteError(m, b, points)
			if err < smallest {
				smallest = err
				bestM = m
				bestB = b
			}
		}
	}

	return &stats.FitResult{
		Test:       stats.TestGridFit,
		Slope:      bestM,
		Intercept:  bestB,
		TotalError: smallest,
		RSquared:   rSquared(bestM, bestB, points),
		Equation:   fmt.Sprintf("y = %.2fx + %.2f", bestM, bestB),
		GridPoints: (mSteps + 1) * (bSteps + 1),
	}, nil
}

// rSquared is the coefficient of determination of the best line's
// predictions against the mean of y. A zero total sum of squares (all y
// identical) is defined as 0, not NaN.
func rSquared(m, b float64, points []Point) float64 {
	yMean := 0.0
	for _, p := range points {
		yMean += p.Y
	}
	yMean /= float64(len(points))

	ssRes := 0.0
	ssTot := 0.0
	for _, p := range points {
		res := p.Y - (m*p.X + b)
		dev := p.Y - yMean
		ssRes += res * res
		ssTot += dev * dev
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}
