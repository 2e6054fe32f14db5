package monitor

import "github.com/rusenback/ifmon/internal/model"

// Mode is the modal state of the dashboard.
type Mode int

const (
	ModeNormal Mode = iota // table navigation
	ModeDetail             // detail popup open
)

func (m Mode) String() string {
	if m == ModeDetail {
		return "detail"
	}
	return "normal"
}

// Action is a navigation intent decoded from a key or mouse event.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionOpen
	ActionClose
)

// popupOverscroll lets the popup scroll a little past its last line.
const popupOverscroll = 2

// MaxScroll is the largest popup scroll offset for the given content.
func MaxScroll(contentLines, visibleLines int) int {
	over := contentLines - visibleLines
	if over < 0 {
		over = 0
	}
	return over + popupOverscroll
}

// Viewport is what the state machine needs to know about the screen.
type Viewport struct {
	Rows         []model.Row
	ContentLines int // popup body lines for the anchored interface
	VisibleLines int // popup body lines that fit on screen
}

// Nav tracks selection and popup state. The zero value is Normal with row 0 selected.
//
// Selection is an index into the freshly sorted row list, not an identity:
// when the sort order shifts between ticks the highlighted interface can change.
type Nav struct {
	mode     Mode
	selected int
	scroll   int
	anchor   model.Identity
	anchored bool
}

func (n Nav) Mode() Mode { return n.mode }

func (n Nav) Selected() int { return n.selected }

func (n Nav) Scroll() int { return n.scroll }

func (n Nav) PopupOpen() bool { return n.mode == ModeDetail }

// Anchor returns the identity the popup was opened on.
func (n Nav) Anchor() (model.Identity, bool) {
	return n.anchor, n.anchored
}

// Dispatch applies one action and returns the new state.
func (n Nav) Dispatch(a Action, vp Viewport) Nav {
	switch n.mode {
	case ModeDetail:
		return n.dispatchDetail(a, vp)
	default:
		return n.dispatchNormal(a, vp)
	}
}

func (n Nav) dispatchNormal(a Action, vp Viewport) Nav {
	switch a {
	case ActionUp:
		if n.selected > 0 {
			n.selected--
		}
	case ActionDown:
		if n.selected+1 < len(vp.Rows) {
			n.selected++
		}
	case ActionOpen:
		return n.open(vp)
	}
	return n
}

func (n Nav) dispatchDetail(a Action, vp Viewport) Nav {
	switch a {
	case ActionUp:
		if n.scroll > 0 {
			n.scroll--
		}
	case ActionDown:
		if n.scroll < MaxScroll(vp.ContentLines, vp.VisibleLines) {
			n.scroll++
		}
	case ActionOpen:
		return n.open(vp)
	case ActionClose:
		n.mode = ModeNormal
		n.scroll = 0
		n.anchored = false
		n.anchor = model.Identity{}
	}
	return n
}

func (n Nav) open(vp Viewport) Nav {
	n.mode = ModeDetail
	n.scroll = 0
	n.anchored = false
	n.anchor = model.Identity{}
	if n.selected < len(vp.Rows) {
		n.anchor = vp.Rows[n.selected].ID
		n.anchored = true
	}
	return n
}

// ClampSelection keeps the selection inside [0, rowCount-1] (0 when empty).
func (n Nav) ClampSelection(rowCount int) Nav {
	switch {
	case rowCount <= 0:
		n.selected = 0
	case n.selected >= rowCount:
		n.selected = rowCount - 1
	case n.selected < 0:
		n.selected = 0
	}
	return n
}

// ClampScroll keeps the popup offset inside [0, MaxScroll].
func (n Nav) ClampScroll(contentLines, visibleLines int) Nav {
	if limit := MaxScroll(contentLines, visibleLines); n.scroll > limit {
		n.scroll = limit
	}
	if n.scroll < 0 {
		n.scroll = 0
	}
	return n
}
