// Package testkit provides deterministic fixtures for tests. Generators
// take explicit seeds so fixtures are stable across runs and platforms.
package testkit

import (
	"math"

	"statlab/domain/core"
	"statlab/domain/dataset"
)

// Gen is a tiny deterministic generator (linear congruential state with a
// Box-Muller transform for normals). It avoids math/rand so fixture values
// never shift with a Go release.
type Gen struct {
	state float64
}

// NewGen creates a generator from an explicit seed
func NewGen(seed int64) *Gen {
	return &Gen{state: float64(seed%2147483648 + 1)}
}

// Float64 returns the next value in [0,1)
func (g *Gen) Float64() float64 {
	g.state = math.Mod(g.state*1103515245+12345, 2147483648)
	return g.state / 2147483648.0
}

// Intn returns a value in [0,n)
func (g *Gen) Intn(n int) int {
	return int(g.Float64() * float64(n))
}

// Norm returns a standard normal draw via Box-Muller
func (g *Gen) Norm() float64 {
	u1 := g.Float64()
	u2 := g.Float64()
	if u1 < 1e-12 {
		u1 = 1e-12
	}
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// NormalSeries draws n values from Normal(mean, sd)
func (g *Gen) NormalSeries(n int, mean, sd float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = mean + sd*g.Norm()
	}
	return out
}

// GroupedView builds a two-column view (group, value) where each label gets
// n normal draws at its own mean. Rows are emitted label by label, so level
// order matches the label slice.
func GroupedView(seed int64, labels []string, means []float64, sd float64, n int) (*dataset.View, error) {
	g := NewGen(seed)
	var rows [][]core.Value
	for i, label := range labels {
		for _, v := range g.NormalSeries(n, means[i], sd) {
			rows = append(rows, []core.Value{core.Text(label), core.Number(v)})
		}
	}
	return dataset.NewView([]string{"group", "value"}, rows)
}

// PairedView builds a two-column numeric view from x/y slices
func PairedView(xs, ys []float64) (*dataset.View, error) {
	rows := make([][]core.Value, len(xs))
	for i := range xs {
		rows[i] = []core.Value{core.Number(xs[i]), core.Number(ys[i])}
	}
	return dataset.NewView([]string{"x", "y"}, rows)
}

// CategoricalView builds a two-column label view where each (a, b) pair
// appears count times, in the order given. Useful for building contingency
// tables with exact counts.
type LabelPair struct {
	A, B  string
	Count int
}

// CategoricalView expands label pairs into rows
func CategoricalView(columnA, columnB string, pairs []LabelPair) (*dataset.View, error) {
	var rows [][]core.Value
	for _, p := range pairs {
		for i := 0; i < p.Count; i++ {
			rows = append(rows, []core.Value{core.Text(p.A), core.Text(p.B)})
		}
	}
	return dataset.NewView([]string{columnA, columnB}, rows)
}
