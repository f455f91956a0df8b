package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statlab/domain/dataset"
)

func labels(t *testing.T, v *dataset.View, column string) []string {
	t.Helper()
	out, err := v.LabelColumn(column)
	require.NoError(t, err)
	return out
}

func TestSynthesizerSameSeedSameData(t *testing.T) {
	a, err := NewSynthesizer(42).FamiliarLifespans(50)
	require.NoError(t, err)
	b, err := NewSynthesizer(42).FamiliarLifespans(50)
	require.NoError(t, err)

	assert.Equal(t, labels(t, a, "pack"), labels(t, b, "pack"))
	av, err := a.Float64Column("lifespan")
	require.NoError(t, err)
	bv, err := b.Float64Column("lifespan")
	require.NoError(t, err)
	assert.Equal(t, av, bv)
}

func TestSynthesizerDifferentSeedsDiffer(t *testing.T) {
	a, err := NewSynthesizer(1).FamiliarLifespans(50)
	require.NoError(t, err)
	b, err := NewSynthesizer(2).FamiliarLifespans(50)
	require.NoError(t, err)

	av, _ := a.Float64Column("lifespan")
	bv, _ := b.Float64Column("lifespan")
	assert.NotEqual(t, av, bv)
}

func TestFamiliarLifespansShape(t *testing.T) {
	v, err := NewSynthesizer(42).FamiliarLifespans(100)
	require.NoError(t, err)

	assert.Equal(t, []string{"pack", "lifespan"}, v.Columns())
	assert.Equal(t, 100, v.Len())

	for _, l := range labels(t, v, "pack") {
		assert.Contains(t, []string{"vein", "artery"}, l)
	}

	values, err := v.Float64Column("lifespan")
	require.NoError(t, err)
	sum := 0.0
	for _, x := range values {
		sum += x
	}
	assert.InDelta(t, 75.0, sum/float64(len(values)), 2.0, "lifespans center near 75")
}

func TestFamiliarIronLevels(t *testing.T) {
	v, err := NewSynthesizer(42).FamiliarIron(300)
	require.NoError(t, err)
	assert.Equal(t, 300, v.Len())
	for _, l := range labels(t, v, "iron") {
		assert.Contains(t, []string{"low", "normal", "high"}, l)
	}
}

func TestDogsShape(t *testing.T) {
	v, err := NewSynthesizer(42).Dogs(200)
	require.NoError(t, err)
	assert.Equal(t, 200, v.Len())
	assert.True(t, v.HasColumn("breed"))
	assert.True(t, v.HasColumn("weight"))
	assert.True(t, v.HasColumn("is_hypoallergenic"))

	weights, err := v.Float64Column("weight")
	require.NoError(t, err)
	for _, w := range weights {
		assert.GreaterOrEqual(t, w, 5.0)
		assert.LessOrEqual(t, w, 80.0)
	}

	flags, err := v.Float64Column("likes_children")
	require.NoError(t, err)
	for _, f := range flags {
		assert.Contains(t, []float64{0, 1}, f)
	}
}

func TestStudentsShape(t *testing.T) {
	v, err := NewSynthesizer(7).Students(100)
	require.NoError(t, err)
	assert.Equal(t, 100, v.Len())

	grades, err := v.Float64Column("math_grade")
	require.NoError(t, err)
	for _, g := range grades {
		assert.GreaterOrEqual(t, g, 0.0)
		assert.LessOrEqual(t, g, 20.0)
	}
}

func TestProductionTrend(t *testing.T) {
	v, err := NewSynthesizer(42).Production(1998, 15)
	require.NoError(t, err)
	assert.Equal(t, 15, v.Len())

	years, err := v.Float64Column("year")
	require.NoError(t, err)
	assert.Equal(t, 1998.0, years[0])
	assert.Equal(t, 2012.0, years[14])
}
