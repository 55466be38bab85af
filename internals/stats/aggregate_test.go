package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDistribution_TotalIsSumOfCounts(t *testing.T) {
	d := NewDistribution(map[string]int64{
		"pending": 7, "approved": 11, "denied": 2, "expired": 0,
	})
	assert.Equal(t, int64(20), d.Total)

	var sum int64
	for _, v := range d.Counts {
		sum += v
	}
	assert.Equal(t, d.Total, sum)
}

func TestPercentages_SumToExactlyOneHundred(t *testing.T) {
	// 1/3, 1/3, 1/3 would naively render as 33.3+33.3+33.3 = 99.9
	cases := []map[string]int64{
		{"a": 1, "b": 1, "c": 1},
		{"a": 2, "b": 1},
		{"pending": 7, "approved": 11, "denied": 2, "expired": 3},
		{"x": 1, "y": 1, "z": 1, "w": 1, "v": 1, "u": 1, "t": 1},
		{"only": 5},
	}
	for _, counts := range cases {
		d := NewDistribution(counts)
		pcts := d.Percentages()

		var sum float64
		for _, p := range pcts {
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 100.0)
			sum += p
		}
		assert.InDelta(t, 100.0, sum, 1e-9, "counts=%v pcts=%v", counts, pcts)
	}
}

func TestPercentages_EmptyTotal(t *testing.T) {
	d := NewDistribution(map[string]int64{"pending": 0, "approved": 0})
	pcts := d.Percentages()
	assert.Equal(t, 0.0, pcts["pending"])
	assert.Equal(t, 0.0, pcts["approved"])
}

func TestPercentages_Deterministic(t *testing.T) {
	counts := map[string]int64{"a": 1, "b": 1, "c": 1}
	first := NewDistribution(counts).Percentages()
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, NewDistribution(counts).Percentages())
	}
}

func TestRate(t *testing.T) {
	assert.Equal(t, 0.0, Rate(0, 0), "empty total must be 0, not NaN")
	assert.Equal(t, 0.0, Rate(5, 0))
	assert.Equal(t, 0.5, Rate(1, 2))
	assert.Equal(t, 1.0, Rate(3, 3))
	assert.Equal(t, 1.0, Rate(5, 3), "part clamped to total")
	assert.Equal(t, 0.0, Rate(-1, 10))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, Percent(0, 0))
	assert.Equal(t, 33.3, Percent(1, 3))
	assert.Equal(t, 66.7, Percent(2, 3))
	assert.Equal(t, 100.0, Percent(4, 4))
}

func TestTopN(t *testing.T) {
	sold := map[string]float64{
		"coxinha": 120, "suco": 95, "pão de queijo": 120, "fruta": 12,
	}
	top := TopN(sold, 3)
	require.Len(t, top, 3)
	// tie between coxinha and pão de queijo breaks on key
	assert.Equal(t, "coxinha", top[0].Key)
	assert.Equal(t, "pão de queijo", top[1].Key)
	assert.Equal(t, "suco", top[2].Key)

	assert.Len(t, TopN(sold, 10), 4, "n larger than set returns everything")
}

func TestBottomN_AtRiskOrdering(t *testing.T) {
	averages := map[string]float64{
		"s1": 8.5, "s2": 4.2, "s3": 6.0, "s4": 4.2,
	}
	atRisk := BottomN(averages, 2)
	require.Len(t, atRisk, 2)
	assert.Equal(t, "s2", atRisk[0].Key)
	assert.Equal(t, "s4", atRisk[1].Key)
}
