// internal/model/counters.go
package model

import "time"

// Counters sisältää liitännän kumulatiiviset tavulaskurit
type Counters struct {
	RxBytes uint64 // Total bytes received
	TxBytes uint64 // Total bytes transmitted
}

// CounterSnapshot is one interface's counters at one tick.
type CounterSnapshot struct {
	RxBytes uint64
	TxBytes uint64

	// Timestamp for rate calculations
	Timestamp time.Time
}

// Rate is throughput in bytes per second.
type Rate struct {
	RxPerSec float64
	TxPerSec float64
}

// Row is one interface's display-ready aggregate for the current tick.
type Row struct {
	ID          Identity
	DisplayName string
	Total       uint64
	TotalRx     uint64
	TotalTx     uint64
	RxRate      float64
	TxRate      float64
}
