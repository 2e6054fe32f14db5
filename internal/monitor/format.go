package monitor

import (
	"fmt"
	"strings"
)

// Unit selects how byte quantities are displayed.
type Unit int

const (
	UnitBytes Unit = iota
	UnitBits
)

func (u Unit) String() string {
	if u == UnitBits {
		return "bits"
	}
	return "bytes"
}

// ParseUnit accepts "bytes" or "bits" (and the singular forms).
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bytes", "byte", "b":
		return UnitBytes, nil
	case "bits", "bit":
		return UnitBits, nil
	}
	return UnitBytes, fmt.Errorf("unknown unit %q (want bytes or bits)", s)
}

var (
	binaryPrefixes  = []string{"KiB", "MiB", "GiB", "TiB", "PiB"}
	decimalPrefixes = []string{"Kb", "Mb", "Gb", "Tb"}
)

// FormatTotal renders a cumulative byte count in the given unit.
func FormatTotal(bytes uint64, unit Unit) string {
	return formatQuantity(float64(bytes), unit)
}

// FormatRate renders a bytes-per-second rate in the given unit.
func FormatRate(bytesPerSec float64, unit Unit) string {
	return formatQuantity(bytesPerSec, unit) + "/s"
}

func formatQuantity(bytes float64, unit Unit) string {
	if bytes < 0 {
		bytes = 0
	}
	if unit == UnitBits {
		return formatBits(bytes * 8)
	}
	return formatBytes(bytes)
}

// precision is one decimal below 1e6 raw units, two above.
func precision(raw float64) int {
	if raw < 1_000_000 {
		return 1
	}
	return 2
}

func formatBits(bits float64) string {
	if bits < 1000 {
		return fmt.Sprintf("%.0f b", bits)
	}
	scaled := bits / 1000
	i := 0
	for scaled >= 1000 && i < len(decimalPrefixes)-1 {
		scaled /= 1000
		i++
	}
	return fmt.Sprintf("%.*f %s", precision(bits), scaled, decimalPrefixes[i])
}

func formatBytes(bytes float64) string {
	if bytes < 1000 {
		return fmt.Sprintf("%.0f B", bytes)
	}
	scaled := bytes / 1024
	i := 0
	for scaled >= 1024 && i < len(binaryPrefixes)-1 {
		scaled /= 1024
		i++
	}
	return fmt.Sprintf("%.*f %s", precision(bytes), scaled, binaryPrefixes[i])
}

// FormatLinkSpeed renders a link speed in bits per second with decimal prefixes.
func FormatLinkSpeed(bps uint64) string {
	const k = 1000.0
	b := float64(bps)
	switch {
	case b >= k*k*k:
		return fmt.Sprintf("%.2f Gb/s", b/(k*k*k))
	case b >= k*k:
		return fmt.Sprintf("%.2f Mb/s", b/(k*k))
	case b >= k:
		return fmt.Sprintf("%.2f Kb/s", b/k)
	default:
		return fmt.Sprintf("%d b/s", bps)
	}
}
