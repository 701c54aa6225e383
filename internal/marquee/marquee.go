// Package marquee scrolls a row of logo names continuously, pausing while
// the pointer or keyboard focus is on it and briefly after a click.
package marquee

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// TouchPause is how long a click holds the marquee still.
const TouchPause = 1200 * time.Millisecond

const separator = "  •  "

// Marquee is the scroll state. The zero value is an empty, idle marquee.
type Marquee struct {
	strip      []rune
	offset     int
	hovered    bool
	focused    bool
	touchUntil time.Time
}

// New builds a marquee over the given names. Blank names are skipped.
func New(names []string) *Marquee {
	kept := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			kept = append(kept, n)
		}
	}
	m := &Marquee{}
	if len(kept) > 0 {
		m.strip = []rune(strings.Join(kept, separator) + separator)
	}
	return m
}

// Empty reports whether there is nothing to scroll.
func (m *Marquee) Empty() bool { return len(m.strip) == 0 }

// Hover sets the pointer-over state.
func (m *Marquee) Hover(on bool) { m.hovered = on }

// Focus sets the keyboard-focus state.
func (m *Marquee) Focus(on bool) { m.focused = on }

// Touch pauses until now+TouchPause. A second touch extends the pause.
func (m *Marquee) Touch(now time.Time) { m.touchUntil = now.Add(TouchPause) }

// Paused reports whether scrolling is held at now.
func (m *Marquee) Paused(now time.Time) bool {
	return m.hovered || m.focused || now.Before(m.touchUntil)
}

// Step advances one cell unless paused. It reports whether it moved.
func (m *Marquee) Step(now time.Time) bool {
	if m.Empty() || m.Paused(now) {
		return false
	}
	m.offset = (m.offset + 1) % len(m.strip)
	return true
}

// Offset is the current scroll position in runes.
func (m *Marquee) Offset() int { return m.offset }

// Window renders width terminal cells of the looping strip starting at the
// current offset.
func (m *Marquee) Window(width int) string {
	if m.Empty() || width <= 0 {
		return ""
	}
	var b strings.Builder
	cells := 0
	for i := 0; cells < width; i++ {
		r := m.strip[(m.offset+i)%len(m.strip)]
		w := runewidth.RuneWidth(r)
		if cells+w > width {
			break
		}
		b.WriteRune(r)
		cells += w
	}
	if cells < width {
		b.WriteString(strings.Repeat(" ", width-cells))
	}
	return b.String()
}
