package loader

import (
	"math/rand"

	"statlab/domain/core"
	"statlab/domain/dataset"
)

// Synthesizer generates the fallback datasets used when no input file is
// available. The seed is an explicit parameter so two synthesizers with the
// same seed produce identical views; nothing here touches the process-wide
// random source.
type Synthesizer struct {
	rng *rand.Rand
}

// NewSynthesizer creates a generator from an explicit seed
func NewSynthesizer(seed int64) *Synthesizer {
	return &Synthesizer{rng: rand.New(rand.NewSource(seed))}
}

// FamiliarLifespans generates n rows of pack membership and lifespan,
// lifespans drawn from Normal(75, 2).
func (s *Synthesizer) FamiliarLifespans(n int) (*dataset.View, error) {
	packs := []string{"vein", "artery"}
	rows := make([][]core.Value, n)
	for i := range rows {
		rows[i] = []core.Value{
			core.Text(packs[s.rng.Intn(len(packs))]),
			core.Number(75 + 2*s.rng.NormFloat64()),
		}
	}
	return dataset.NewView([]string{"pack", "lifespan"}, rows)
}

// FamiliarIron generates n rows of pack membership and iron level, with
// iron drawn low/normal/high at 20/60/20 percent.
func (s *Synthesizer) FamiliarIron(n int) (*dataset.View, error) {
	packs := []string{"vein", "artery"}
	rows := make([][]core.Value, n)
	for i := range rows {
		iron := "normal"
		switch u := s.rng.Float64(); {
		case u < 0.2:
			iron = "low"
		case u >= 0.8:
			iron = "high"
		}
		rows[i] = []core.Value{
			core.Text(packs[s.rng.Intn(len(packs))]),
			core.Text(iron),
		}
	}
	return dataset.NewView([]string{"pack", "iron"}, rows)
}

// Dogs generates n rows of adoption-profile data: breed, weight,
// tail length, age, color, and three behavioral flags.
func (s *Synthesizer) Dogs(n int) (*dataset.View, error) {
	breeds := []string{"whippet", "terrier", "pitbull", "poodle", "shihtzu", "chihuahua", "labrador"}
	colors := []string{"black", "brown", "gold", "white", "gray"}
	columns := []string{"breed", "weight", "tail_length", "age", "color", "likes_children", "is_hypoallergenic", "is_rescue"}
	rows := make([][]core.Value, n)
	for i := range rows {
		rows[i] = []core.Value{
			core.Text(breeds[s.rng.Intn(len(breeds))]),
			core.Number(5 + 75*s.rng.Float64()),
			core.Number(0.5 + 9.5*s.rng.Float64()),
			core.Number(float64(1 + s.rng.Intn(14))),
			core.Text(colors[s.rng.Intn(len(colors))]),
			s.bernoulli(0.7),
			s.bernoulli(0.3),
			s.bernoulli(0.4),
		}
	}
	return dataset.NewView(columns, rows)
}

// Students generates n rows of grade data with parental jobs and address
func (s *Synthesizer) Students(n int) (*dataset.View, error) {
	jobs := []string{"teacher", "health", "services", "at_home", "other"}
	addresses := []string{"U", "R"}
	columns := []string{"math_grade", "absences", "mjob", "fjob", "address"}
	rows := make([][]core.Value, n)
	for i := range rows {
		rows[i] = []core.Value{
			core.Number(float64(s.rng.Intn(21))),
			core.Number(float64(s.rng.Intn(31))),
			core.Text(jobs[s.rng.Intn(len(jobs))]),
			core.Text(jobs[s.rng.Intn(len(jobs))]),
			core.Text(addresses[s.rng.Intn(len(addresses))]),
		}
	}
	return dataset.NewView(columns, rows)
}

// Production generates yearly production totals following a noisy downward
// trend, the shape the line fitter is usually pointed at.
func (s *Synthesizer) Production(startYear, years int) (*dataset.View, error) {
	rows := make([][]core.Value, years)
	for i := range rows {
		trend := 5500000 - 90000*float64(i)
		noise := 250000 * s.rng.NormFloat64()
		rows[i] = []core.Value{
			core.Number(float64(startYear + i)),
			core.Number(trend + noise),
		}
	}
	return dataset.NewView([]string{"year", "total_production"}, rows)
}

// bernoulli returns 1 with probability p, else 0, as a numeric flag
func (s *Synthesizer) bernoulli(p float64) core.Value {
	if s.rng.Float64() < p {
		return core.Number(1)
	}
	return core.Number(0)
}
