package carousel

import "time"

// DefaultPeriod is the autoplay cadence and the progress bar duration.
const DefaultPeriod = 7 * time.Second

// Reason names why autoplay is suspended.
type Reason uint8

const (
	ReasonHover Reason = 1 << iota
	ReasonFocus
	ReasonDrag
)

// Autoplay is a cancellable repeating task handle. It does not own a timer:
// whoever drives it schedules one fire per Generation and hands the
// generation back to Fire, which rejects anything stale.
type Autoplay struct {
	period    time.Duration
	running   bool
	suspended Reason
	gen       uint64
}

// NewAutoplay returns a stopped task firing every period.
func NewAutoplay(period time.Duration) *Autoplay {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Autoplay{period: period}
}

// Period is the fire interval.
func (a *Autoplay) Period() time.Duration { return a.period }

// Generation identifies the currently armed fire.
func (a *Autoplay) Generation() uint64 { return a.gen }

// Running reports whether autoplay is enabled, suspended or not.
func (a *Autoplay) Running() bool { return a.running }

// Suspended reports whether any pause reason is held.
func (a *Autoplay) Suspended() bool { return a.suspended != 0 }

// Armed reports whether a fire should currently be scheduled.
func (a *Autoplay) Armed() bool { return a.running && a.suspended == 0 }

// Start enables autoplay and arms a fresh countdown.
func (a *Autoplay) Start() {
	a.running = true
	a.gen++
}

// Stop disables autoplay. Stopping a stopped task is a no-op.
func (a *Autoplay) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.gen++
}

// Suspend holds a pause reason; the pending fire is cancelled.
func (a *Autoplay) Suspend(r Reason) {
	if a.suspended&r != 0 {
		return
	}
	wasArmed := a.Armed()
	a.suspended |= r
	if wasArmed {
		a.gen++
	}
}

// Resume releases a pause reason and re-arms once none remain.
func (a *Autoplay) Resume(r Reason) {
	if a.suspended&r == 0 {
		return
	}
	a.suspended &^= r
	if a.Armed() {
		a.gen++
	}
}

// Reset restarts the countdown without changing the running state.
func (a *Autoplay) Reset() {
	a.gen++
}

// Fire reports whether a scheduled fire for gen should advance the
// carousel. On success the next countdown is armed.
func (a *Autoplay) Fire(gen uint64) bool {
	if !a.Armed() || gen != a.gen {
		return false
	}
	a.gen++
	return true
}

// Progress is the visual countdown restarted on every rotation.
type Progress struct {
	period    time.Duration
	startedAt time.Time
	running   bool
}

// Restart begins a fresh countdown at now.
func (p *Progress) Restart(now time.Time) {
	p.startedAt = now
	p.running = true
}

// Clear empties the bar.
func (p *Progress) Clear() {
	p.running = false
	p.startedAt = time.Time{}
}

// Running reports whether the bar is filling.
func (p *Progress) Running() bool { return p.running }

// Fraction is the filled share of the bar at now, in [0, 1].
func (p *Progress) Fraction(now time.Time) float64 {
	if !p.running || p.period <= 0 {
		return 0
	}
	elapsed := now.Sub(p.startedAt)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= p.period {
		return 1
	}
	return float64(elapsed) / float64(p.period)
}
