package metric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/pillars/internal/metric"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		part  float64
		whole float64
		want  int
	}{
		{name: "Quarter", part: 50, whole: 200, want: 25},
		{name: "ZeroPart", part: 0, whole: 100, want: 0},
		{name: "ZeroWhole", part: 5, whole: 0, want: 0},
		{name: "Rounds", part: 1, whole: 3, want: 33},
		{name: "RoundsUp", part: 2, whole: 3, want: 67},
		{name: "OverTarget", part: 150, whole: 100, want: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, metric.Percentage(tt.part, tt.whole))
		})
	}
}

func TestSum(t *testing.T) {
	type tx struct {
		kind   string
		amount int64
	}

	txs := []tx{
		{kind: "income", amount: 300000},
		{kind: "expense", amount: 15000},
		{kind: "expense", amount: 4500},
	}

	total := metric.Sum(txs, func(t tx) int64 { return t.amount })
	assert.Equal(t, int64(319500), total)

	expenses := metric.SumWhere(txs,
		func(t tx) bool { return t.kind == "expense" },
		func(t tx) int64 { return t.amount })
	assert.Equal(t, int64(19500), expenses)

	assert.Equal(t, int64(0), metric.Sum([]tx{}, func(t tx) int64 { return t.amount }))
}

func TestCountWhere(t *testing.T) {
	done := []bool{true, false, true, true}
	assert.Equal(t, 3, metric.CountWhere(done, func(b bool) bool { return b }))
}

func TestGain(t *testing.T) {
	assert.Equal(t, int64(20000), metric.Gain(100000, 120000))
	assert.Equal(t, int64(-5000), metric.Gain(100000, 95000))

	assert.InDelta(t, 20.0, metric.GainPercent(100000, 120000), 0.001)
	assert.Equal(t, 0.0, metric.GainPercent(0, 120000))
}

func TestRemaining(t *testing.T) {
	// allocated=500, spent=350 -> remaining=150, 70% spent
	assert.Equal(t, int64(15000), metric.Remaining(50000, 35000))
	assert.Equal(t, 70, metric.Percentage(int64(35000), int64(50000)))
}
