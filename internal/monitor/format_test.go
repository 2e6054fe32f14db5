package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTotalBytes(t *testing.T) {
	cases := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{999, "999 B"},
		{1000, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{999_999, "976.6 KiB"},
		{1_000_000, "976.56 KiB"},
		{1 << 20, "1.00 MiB"},
		{5 << 30, "5.00 GiB"},
		{3 << 40, "3.00 TiB"},
		{1 << 50, "1.00 PiB"},
		{2048 << 50, "2048.00 PiB"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatTotal(tc.in, UnitBytes), "%d", tc.in)
	}
}

func TestFormatTotalBits(t *testing.T) {
	cases := []struct {
		in   uint64
		want string
	}{
		{0, "0 b"},
		{124, "992 b"},
		{125, "1.0 Kb"},
		{124_999, "1000.0 Kb"},
		{125_000, "1.00 Mb"},
		{125_000_000, "1.00 Gb"},
		{125_000_000_000, "1.00 Tb"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatTotal(tc.in, UnitBits), "%d", tc.in)
	}
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "1000 B/s", FormatRate(1000-0.4, UnitBytes))
	assert.Equal(t, "1.0 KiB/s", FormatRate(1000, UnitBytes))
	assert.Equal(t, "8.0 Kb/s", FormatRate(1000, UnitBits))
	assert.Equal(t, "0 b/s", FormatRate(-3, UnitBits))
}

func TestFormatLinkSpeed(t *testing.T) {
	assert.Equal(t, "1.00 Gb/s", FormatLinkSpeed(1_000_000_000))
	assert.Equal(t, "100.00 Mb/s", FormatLinkSpeed(100_000_000))
	assert.Equal(t, "54.00 Kb/s", FormatLinkSpeed(54_000))
	assert.Equal(t, "900 b/s", FormatLinkSpeed(900))
}

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit("Bits")
	assert.NoError(t, err)
	assert.Equal(t, UnitBits, u)

	u, err = ParseUnit("bytes")
	assert.NoError(t, err)
	assert.Equal(t, UnitBytes, u)

	_, err = ParseUnit("nibbles")
	assert.Error(t, err)
}
