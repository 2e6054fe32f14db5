package monitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/rusenback/ifmon/internal/model"
	"github.com/rusenback/ifmon/internal/netif"
)

// Options are the recognised session settings.
type Options struct {
	Iface    string // optional single-interface filter
	Sort     SortKey
	Interval time.Duration
	Unit     Unit
}

// Session is the monitor state for one invocation: tracked interfaces,
// previous samples, the cached row set, navigation and the tick clock.
// It is not safe for concurrent use; the event loop owns it.
type Session struct {
	dir    netif.Directory
	logger *slog.Logger

	filter string
	unit   Unit
	sort   SortKey

	ifaces    []model.Interface
	nameWidth int
	calc      *RateCalculator
	rows      []model.Row
	nav       Nav
	sched     *Schedule
}

// NewSession lists the tracked interfaces and schedules the first tick at now.
func NewSession(ctx context.Context, dir netif.Directory, opts Options, logger *slog.Logger, now time.Time) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		dir:    dir,
		logger: logger,
		filter: opts.Iface,
		unit:   opts.Unit,
		sort:   opts.Sort,
		calc:   NewRateCalculator(),
		sched:  NewSchedule(opts.Interval, now),
	}
	s.scan(ctx)
	return s
}

// Rescan re-queries the directory and forgets all previous samples, so the
// next tick reports zero rates. Cached rows stay on screen until that tick.
func (s *Session) Rescan(ctx context.Context) {
	s.scan(ctx)
	s.calc.Reset()
	s.nav = s.nav.ClampSelection(len(s.rows))
}

func (s *Session) scan(ctx context.Context) {
	all, err := s.dir.ListInterfaces(ctx)
	if err != nil {
		s.logger.Warn("list interfaces failed", "error", err)
		all = nil
	}

	tracked := make([]model.Interface, 0, len(all))
	for _, itf := range all {
		if s.filter != "" && itf.Name != s.filter && itf.FriendlyName != s.filter {
			continue
		}
		tracked = append(tracked, itf)
	}

	s.ifaces = tracked
	s.nameWidth = NameWidth(tracked)
	s.logger.Debug("interfaces scanned", "tracked", len(tracked), "total", len(all), "filter", s.filter)
}

// Tick refreshes every tracked interface, recomputes rates, rebuilds and
// sorts the row set, clamps the selection and advances the schedule.
// The row set is replaced only after every interface has been read.
func (s *Session) Tick(ctx context.Context, now time.Time) {
	snaps := make(map[string]model.CounterSnapshot, len(s.ifaces))
	live := make([]int, 0, len(s.ifaces))

	for i := range s.ifaces {
		itf := &s.ifaces[i]
		c, err := s.dir.RefreshCounters(ctx, *itf)
		if err != nil {
			s.logger.Debug("skip interface", "iface", itf.Name, "error", err)
			itf.Stats = nil
			continue
		}
		snap := model.CounterSnapshot{RxBytes: c.RxBytes, TxBytes: c.TxBytes, Timestamp: now}
		itf.Stats = &snap
		snaps[itf.Name] = snap
		live = append(live, i)
	}

	rates := s.calc.Update(snaps)

	rows := make([]model.Row, 0, len(live))
	for _, i := range live {
		itf := s.ifaces[i]
		rows = append(rows, NewRow(itf.ID(), *itf.Stats, rates[itf.Name]))
	}
	SortRows(rows, s.sort)

	s.rows = rows
	s.nav = s.nav.ClampSelection(len(rows))
	s.sched.Advance()
}

// CycleSort moves to the next sort key. The cached rows are re-sorted on the next tick.
func (s *Session) CycleSort() {
	s.sort = s.sort.Next()
}

// Dispatch feeds a navigation action to the state machine.
func (s *Session) Dispatch(a Action, contentLines, visibleLines int) {
	s.nav = s.nav.Dispatch(a, Viewport{
		Rows:         s.rows,
		ContentLines: contentLines,
		VisibleLines: visibleLines,
	})
}

// ClampScroll keeps the popup offset valid for the current content.
func (s *Session) ClampScroll(contentLines, visibleLines int) {
	s.nav = s.nav.ClampScroll(contentLines, visibleLines)
}

// Detail returns the interface the popup is anchored to, if it is still in the row set.
func (s *Session) Detail() (model.Interface, bool) {
	if !s.nav.PopupOpen() {
		return model.Interface{}, false
	}
	id, ok := s.nav.Anchor()
	if !ok {
		return model.Interface{}, false
	}
	for _, r := range s.rows {
		if r.ID.Name == id.Name {
			return s.Interface(id.Name)
		}
	}
	return model.Interface{}, false
}

// Interface looks up a tracked interface by name.
func (s *Session) Interface(name string) (model.Interface, bool) {
	for _, itf := range s.ifaces {
		if itf.Name == name {
			return itf, true
		}
	}
	return model.Interface{}, false
}

// Due reports whether a tick is due at now.
func (s *Session) Due(now time.Time) bool { return s.sched.Due(now) }

// Remaining is the input-wait budget until the next tick.
func (s *Session) Remaining(now time.Time) time.Duration { return s.sched.Remaining(now) }

func (s *Session) Rows() []model.Row { return s.rows }

func (s *Session) Nav() Nav { return s.nav }

func (s *Session) Sort() SortKey { return s.sort }

func (s *Session) Unit() Unit { return s.unit }

func (s *Session) Filter() string { return s.filter }

func (s *Session) Interval() time.Duration { return s.sched.Interval() }

func (s *Session) NameWidth() int { return s.nameWidth }

// Tracked returns the interfaces selected by the last scan.
func (s *Session) Tracked() []model.Interface { return s.ifaces }
