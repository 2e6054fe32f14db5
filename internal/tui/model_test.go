package tui

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/netip"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusenback/ifmon/internal/model"
	"github.com/rusenback/ifmon/internal/monitor"
)

type fakeDirectory struct {
	ifaces   []model.Interface
	counters map[string]model.Counters
}

func (d *fakeDirectory) ListInterfaces(context.Context) ([]model.Interface, error) {
	return append([]model.Interface(nil), d.ifaces...), nil
}

func (d *fakeDirectory) RefreshCounters(_ context.Context, itf model.Interface) (model.Counters, error) {
	return d.counters[itf.Name], nil
}

var start = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

type harness struct {
	m     Model
	dir   *fakeDirectory
	clock time.Time
}

func newHarness(t *testing.T, opts monitor.Options) *harness {
	t.Helper()
	speed := uint64(1_000_000_000)
	dir := &fakeDirectory{
		ifaces: []model.Interface{
			{
				Name: "eth0", Index: 2, MTU: 1500, Type: "Ethernet", OperState: model.OperUp,
				MAC:           net.HardwareAddr{0x52, 0x54, 0, 0x12, 0x34, 0x56},
				IPv4:          []netip.Prefix{netip.MustParsePrefix("192.168.1.20/24")},
				IPv6:          []netip.Prefix{netip.MustParsePrefix("fe80::1/64")},
				IPv6ScopeIDs:  []uint32{2},
				Flags:         model.FlagUp | model.FlagRunning,
				TransmitSpeed: &speed,
				Default:       true,
				Gateway:       &model.Gateway{IPv4: []netip.Addr{netip.MustParseAddr("192.168.1.1")}},
			},
			{Name: "lo", Index: 1, Type: "Loopback"},
		},
		counters: map[string]model.Counters{
			"eth0": {RxBytes: 1000, TxBytes: 500},
			"lo":   {RxBytes: 10, TxBytes: 10},
		},
	}
	if opts.Interval == 0 {
		opts.Interval = time.Second
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	session := monitor.NewSession(context.Background(), dir, opts, logger, start)

	h := &harness{dir: dir, clock: start}
	h.m = NewModel(context.Background(), session, "testhost")
	h.m.now = func() time.Time { return h.clock }
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

func (h *harness) tick() tea.Cmd {
	return h.send(tickMsg{seq: h.m.tickSeq})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTickRefreshesRows(t *testing.T) {
	h := newHarness(t, monitor.Options{})
	require.Empty(t, h.m.session.Rows())

	cmd := h.tick()
	require.NotNil(t, cmd, "next tick is scheduled")
	rows := h.m.session.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "eth0", rows[0].ID.Name)

	h.dir.counters["eth0"] = model.Counters{RxBytes: 2000, TxBytes: 500}
	h.clock = start.Add(time.Second)
	h.tick()
	assert.Equal(t, 1000.0, h.m.session.Rows()[0].RxRate)
}

func TestStaleTickIgnored(t *testing.T) {
	h := newHarness(t, monitor.Options{})
	h.tick()
	seq := h.m.tickSeq

	h.clock = start.Add(time.Second)
	cmd := h.send(tickMsg{seq: seq - 1})
	assert.Nil(t, cmd)
	assert.Equal(t, seq, h.m.tickSeq)
}

func TestEarlyTickReschedulesWithoutSampling(t *testing.T) {
	h := newHarness(t, monitor.Options{})
	h.tick()

	h.dir.counters["eth0"] = model.Counters{RxBytes: 9000}
	h.clock = start.Add(500 * time.Millisecond)
	cmd := h.tick()
	require.NotNil(t, cmd)
	assert.Equal(t, uint64(1500), h.m.session.Rows()[0].Total, "rows unchanged before the deadline")
}

func TestKeysDriveSession(t *testing.T) {
	h := newHarness(t, monitor.Options{})
	h.tick()

	h.send(runes("o"))
	assert.Equal(t, monitor.SortTotalRx, h.m.session.Sort())

	h.send(runes("j"))
	assert.Equal(t, 1, h.m.session.Nav().Selected())
	h.send(runes("w"))
	assert.Equal(t, 0, h.m.session.Nav().Selected())
	h.send(runes("s"))
	h.send(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, h.m.session.Nav().Selected(), "clamped to last row")
	h.send(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, h.m.session.Nav().Selected())
}

func TestMouseWheelMovesSelection(t *testing.T) {
	h := newHarness(t, monitor.Options{})
	h.tick()

	h.send(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, 1, h.m.session.Nav().Selected())
	h.send(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	assert.Equal(t, 0, h.m.session.Nav().Selected())
}

func TestQuitAndInterrupt(t *testing.T) {
	h := newHarness(t, monitor.Options{})

	cmd := h.send(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	cmd = h.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.InterruptMsg{}, cmd())
}

func TestRescanKey(t *testing.T) {
	h := newHarness(t, monitor.Options{})
	h.tick()

	h.dir.ifaces = h.dir.ifaces[:1]
	h.send(runes("r"))
	assert.Len(t, h.m.session.Tracked(), 1)

	h.dir.counters["eth0"] = model.Counters{RxBytes: 50_000}
	h.clock = start.Add(time.Second)
	h.tick()
	require.Len(t, h.m.session.Rows(), 1)
	assert.Zero(t, h.m.session.Rows()[0].RxRate)
}

func TestViewHeaderAndTable(t *testing.T) {
	h := newHarness(t, monitor.Options{Unit: monitor.UnitBits, Interval: 2 * time.Second})
	h.tick()

	view := h.m.View()
	assert.Contains(t, view, "sort:Total")
	assert.Contains(t, view, "unit:bits")
	assert.Contains(t, view, "interval:2s (all)")
	assert.Contains(t, view, "IFACE")
	assert.Contains(t, view, "RX/s")
	assert.Contains(t, view, "eth0")
	assert.Contains(t, view, "12.0 Kb", "1500 bytes in bits mode")
	assert.Contains(t, view, "quit")
}

func TestViewFilterInHeader(t *testing.T) {
	h := newHarness(t, monitor.Options{Iface: "eth0"})
	h.tick()
	view := h.m.View()
	assert.Contains(t, view, "interval:1s eth0")
	assert.Len(t, h.m.session.Rows(), 1)
}

func TestDetailPopup(t *testing.T) {
	h := newHarness(t, monitor.Options{})
	h.tick()

	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, h.m.session.Nav().PopupOpen())

	view := h.m.View()
	assert.Contains(t, view, "eth0 (default) on testhost")
	assert.Contains(t, view, "Index: 2")
	assert.Contains(t, view, "MTU: 1500")
	assert.Contains(t, view, "TX: 1.00 Gb/s")
	assert.Contains(t, view, "Flags: 0x00000021 (up, running)")
	assert.Contains(t, view, "192.168.1.20/24")
	assert.Contains(t, view, "fe80::1/64 (scope_id=2)")
	assert.Contains(t, view, "RX bytes: 1,000")

	// Down now scrolls the popup.
	h.send(runes("j"))
	assert.Equal(t, 1, h.m.session.Nav().Scroll())
	assert.Equal(t, 0, h.m.session.Nav().Selected())

	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, h.m.session.Nav().PopupOpen())
	assert.NotContains(t, h.m.View(), "Index: 2")
}

func TestPopupScrollStaysBounded(t *testing.T) {
	h := newHarness(t, monitor.Options{})
	h.tick()
	h.send(tea.KeyMsg{Type: tea.KeyEnter})

	content := len(h.m.detailLines())
	visible := h.m.visibleDetailLines()
	for i := 0; i < content+10; i++ {
		h.send(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, monitor.MaxScroll(content, visible), h.m.session.Nav().Scroll())

	// Growing the terminal shrinks the allowed offset.
	h.send(tea.WindowSizeMsg{Width: 200, Height: 200})
	assert.LessOrEqual(t, h.m.session.Nav().Scroll(), monitor.MaxScroll(content, h.m.visibleDetailLines()))
}

func TestOverlay(t *testing.T) {
	bg := strings.Join([]string{"aaaaaaaa", "bbbbbbbb", "cccccccc"}, "\n")
	got := overlay(bg, "XY\nZW", 3, 1)
	assert.Equal(t, "aaaaaaaa\nbbbXYbbb\ncccZWccc", got)

	got = overlay("ab", "XY", 4, 0)
	assert.Equal(t, "ab  XY", got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdefgh", 5))
	assert.Equal(t, "ab", truncate("abcdefgh", 2))
	assert.Equal(t, "", truncate("abc", 0))
}
