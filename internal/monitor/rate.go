package monitor

import (
	"time"

	"github.com/rusenback/ifmon/internal/model"
)

// minElapsed floors the sampling interval used as the rate divisor.
const minElapsed = time.Millisecond

// ComputeRate derives throughput from two snapshots of the same interface.
// A nil prev yields a zero rate. Counters that went backwards (reset or
// wraparound) yield zero for that direction.
func ComputeRate(prev *model.CounterSnapshot, curr model.CounterSnapshot) model.Rate {
	if prev == nil {
		return model.Rate{}
	}

	dt := curr.Timestamp.Sub(prev.Timestamp)
	if dt < minElapsed {
		dt = minElapsed
	}
	secs := dt.Seconds()

	return model.Rate{
		RxPerSec: float64(saturatingSub(curr.RxBytes, prev.RxBytes)) / secs,
		TxPerSec: float64(saturatingSub(curr.TxBytes, prev.TxBytes)) / secs,
	}
}

func saturatingSub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}

// RateCalculator keeps the previous tick's snapshot per interface.
type RateCalculator struct {
	prev map[string]model.CounterSnapshot
}

// NewRateCalculator creates an empty calculator; the first Update reports zero rates.
func NewRateCalculator() *RateCalculator {
	return &RateCalculator{prev: make(map[string]model.CounterSnapshot)}
}

// Update computes a rate for every snapshot in curr and then replaces the
// previous-snapshot map with curr. Keys missing from curr are forgotten.
func (r *RateCalculator) Update(curr map[string]model.CounterSnapshot) map[string]model.Rate {
	rates := make(map[string]model.Rate, len(curr))
	for key, snap := range curr {
		var prev *model.CounterSnapshot
		if p, ok := r.prev[key]; ok {
			prev = &p
		}
		rates[key] = ComputeRate(prev, snap)
	}

	next := make(map[string]model.CounterSnapshot, len(curr))
	for key, snap := range curr {
		next[key] = snap
	}
	r.prev = next

	return rates
}

// Reset forgets all previous snapshots.
func (r *RateCalculator) Reset() {
	r.prev = make(map[string]model.CounterSnapshot)
}

// Previous returns the stored snapshot for key.
func (r *RateCalculator) Previous(key string) (model.CounterSnapshot, bool) {
	snap, ok := r.prev[key]
	return snap, ok
}

// Len reports how many interfaces have a stored snapshot.
func (r *RateCalculator) Len() int {
	return len(r.prev)
}
