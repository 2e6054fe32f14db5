package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusenback/ifmon/internal/model"
)

func snapAt(t0 time.Time, offset time.Duration, rx, tx uint64) model.CounterSnapshot {
	return model.CounterSnapshot{RxBytes: rx, TxBytes: tx, Timestamp: t0.Add(offset)}
}

func TestComputeRate(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("no previous sample", func(t *testing.T) {
		r := ComputeRate(nil, snapAt(t0, 0, 5000, 7000))
		assert.Zero(t, r.RxPerSec)
		assert.Zero(t, r.TxPerSec)
	})

	t.Run("exact delta over elapsed", func(t *testing.T) {
		prev := snapAt(t0, 0, 1000, 400)
		r := ComputeRate(&prev, snapAt(t0, time.Second, 2000, 900))
		assert.Equal(t, 1000.0, r.RxPerSec)
		assert.Equal(t, 500.0, r.TxPerSec)
	})

	t.Run("fractional interval", func(t *testing.T) {
		prev := snapAt(t0, 0, 0, 0)
		r := ComputeRate(&prev, snapAt(t0, 2*time.Second, 3000, 0))
		assert.Equal(t, 1500.0, r.RxPerSec)
	})

	t.Run("counter reset yields zero", func(t *testing.T) {
		prev := snapAt(t0, 0, 9000, 100)
		r := ComputeRate(&prev, snapAt(t0, time.Second, 10, 300))
		assert.Zero(t, r.RxPerSec)
		assert.Equal(t, 200.0, r.TxPerSec)
	})

	t.Run("elapsed floored at one millisecond", func(t *testing.T) {
		prev := snapAt(t0, 0, 0, 0)
		r := ComputeRate(&prev, snapAt(t0, 0, 5, 0))
		assert.InDelta(t, 5000.0, r.RxPerSec, 1e-6)

		back := snapAt(t0, -time.Second, 5, 0)
		r = ComputeRate(&prev, back)
		assert.InDelta(t, 5000.0, r.RxPerSec, 1e-6)
	})
}

func TestRateCalculatorUpdate(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calc := NewRateCalculator()

	rates := calc.Update(map[string]model.CounterSnapshot{
		"eth0": snapAt(t0, 0, 1000, 0),
		"lo":   snapAt(t0, 0, 50, 50),
	})
	require.Len(t, rates, 2)
	assert.Zero(t, rates["eth0"].RxPerSec, "first sample has no baseline")
	assert.Equal(t, 2, calc.Len())

	rates = calc.Update(map[string]model.CounterSnapshot{
		"eth0": snapAt(t0, time.Second, 2000, 0),
	})
	assert.Equal(t, 1000.0, rates["eth0"].RxPerSec)
	_, ok := calc.Previous("lo")
	assert.False(t, ok, "interfaces missing from a tick are forgotten")

	prev, ok := calc.Previous("eth0")
	require.True(t, ok)
	assert.Equal(t, uint64(2000), prev.RxBytes)

	calc.Reset()
	assert.Zero(t, calc.Len())
	rates = calc.Update(map[string]model.CounterSnapshot{
		"eth0": snapAt(t0, 2*time.Second, 9000, 0),
	})
	assert.Zero(t, rates["eth0"].RxPerSec)
}
