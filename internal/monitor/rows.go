package monitor

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/rusenback/ifmon/internal/model"
)

// SortKey selects the column rows are ordered by (always descending).
type SortKey int

const (
	SortTotal SortKey = iota
	SortTotalRx
	SortTotalTx
	SortRx
	SortTx
)

var sortKeyNames = [...]string{
	SortTotal:   "total",
	SortTotalRx: "total-rx",
	SortTotalTx: "total-tx",
	SortRx:      "rx",
	SortTx:      "tx",
}

func (k SortKey) String() string {
	if k < 0 || int(k) >= len(sortKeyNames) {
		return "unknown"
	}
	return sortKeyNames[k]
}

// Label is the header form of the key.
func (k SortKey) Label() string {
	switch k {
	case SortTotal:
		return "Total"
	case SortTotalRx:
		return "TotalRx"
	case SortTotalTx:
		return "TotalTx"
	case SortRx:
		return "Rx"
	case SortTx:
		return "Tx"
	default:
		return "Unknown"
	}
}

// Next returns the following key in the fixed round-robin order.
func (k SortKey) Next() SortKey {
	switch k {
	case SortTotal:
		return SortTotalRx
	case SortTotalRx:
		return SortTotalTx
	case SortTotalTx:
		return SortRx
	case SortRx:
		return SortTx
	default:
		return SortTotal
	}
}

// ParseSortKey accepts the names printed by String, case-insensitively.
// Underscores and a missing dash are tolerated ("total_rx", "totalrx").
func ParseSortKey(s string) (SortKey, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "_", "-")
	switch norm {
	case "total":
		return SortTotal, nil
	case "total-rx", "totalrx":
		return SortTotalRx, nil
	case "total-tx", "totaltx":
		return SortTotalTx, nil
	case "rx":
		return SortRx, nil
	case "tx":
		return SortTx, nil
	}
	return SortTotal, fmt.Errorf("unknown sort key %q (want total, total-rx, total-tx, rx or tx)", s)
}

// NewRow combines a snapshot and its rate into a display row.
func NewRow(id model.Identity, snap model.CounterSnapshot, rate model.Rate) model.Row {
	return model.Row{
		ID:          id,
		DisplayName: id.DisplayName(),
		Total:       snap.RxBytes + snap.TxBytes,
		TotalRx:     snap.RxBytes,
		TotalTx:     snap.TxBytes,
		RxRate:      rate.RxPerSec,
		TxRate:      rate.TxPerSec,
	}
}

// SortRows orders rows in place, highest value of key first.
// Equal values keep their relative order.
func SortRows(rows []model.Row, key SortKey) {
	slices.SortStableFunc(rows, func(a, b model.Row) int {
		switch key {
		case SortTotalRx:
			return cmp.Compare(b.TotalRx, a.TotalRx)
		case SortTotalTx:
			return cmp.Compare(b.TotalTx, a.TotalTx)
		case SortRx:
			return cmp.Compare(b.RxRate, a.RxRate)
		case SortTx:
			return cmp.Compare(b.TxRate, a.TxRate)
		default:
			return cmp.Compare(b.Total, a.Total)
		}
	})
}

// SortValue returns the value rows are compared by for key.
func SortValue(r model.Row, key SortKey) float64 {
	switch key {
	case SortTotalRx:
		return float64(r.TotalRx)
	case SortTotalTx:
		return float64(r.TotalTx)
	case SortRx:
		return r.RxRate
	case SortTx:
		return r.TxRate
	default:
		return float64(r.Total)
	}
}

const minNameWidth = 5

// NameWidth is the IFACE column width: the longest display name, at least 5.
func NameWidth(ifaces []model.Interface) int {
	width := minNameWidth
	for _, itf := range ifaces {
		if n := utf8.RuneCountInString(itf.ID().DisplayName()); n > width {
			width = n
		}
	}
	return width
}
