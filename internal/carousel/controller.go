package carousel

import (
	"time"

	"github.com/prxstudio/reel/internal/swipe"
)

// Handle is the introspection surface exposed to external callers.
type Handle interface {
	GoTo(target int) bool
	Next()
	Prev()
	StartAuto()
	StopAuto()
	CanonicalOrder() []Slide
}

var _ Handle = (*Controller)(nil)

// Option configures a Controller.
type Option func(*Controller)

// WithPeriod sets the autoplay and progress period.
func WithPeriod(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.auto = NewAutoplay(d)
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithSwipe tunes drag thresholds.
func WithSwipe(p swipe.Params) Option {
	return func(c *Controller) {
		c.gesture = swipe.New(p)
	}
}

// Controller routes input events to the engine and keeps autoplay and the
// progress bar consistent with every rotation. It is not safe for
// concurrent use; callers serialize events.
type Controller struct {
	engine   *Engine
	auto     *Autoplay
	progress Progress
	gesture  swipe.Gesture
	now      func() time.Time
	last     Move
}

// NewController captures slides and returns a controller with autoplay
// stopped. It returns ErrNoSlides for an empty capture.
func NewController(slides []Slide, opts ...Option) (*Controller, error) {
	engine, err := New(slides)
	if err != nil {
		return nil, err
	}
	c := &Controller{
		engine:  engine,
		auto:    NewAutoplay(DefaultPeriod),
		gesture: swipe.New(swipe.Params{}),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.progress.period = c.auto.Period()
	return c, nil
}

// Engine exposes the underlying order state.
func (c *Controller) Engine() *Engine { return c.engine }

// Autoplay exposes the scheduled-task handle.
func (c *Controller) Autoplay() *Autoplay { return c.auto }

// LastMove is the most recent rotation.
func (c *Controller) LastMove() Move { return c.last }

// Indicators returns the synced dot and thumbnail state.
func (c *Controller) Indicators() Indicators { return c.engine.Indicators() }

// CanonicalOrder returns the slides in presentation order.
func (c *Controller) CanonicalOrder() []Slide { return c.engine.Canonical() }

// Progress is the filled share of the countdown bar.
func (c *Controller) Progress() float64 { return c.progress.Fraction(c.now()) }

// ProgressRunning reports whether the countdown bar is filling.
func (c *Controller) ProgressRunning() bool { return c.progress.Running() }

// Next advances one slide as a manual navigation.
func (c *Controller) Next() {
	c.navigated(c.engine.Next())
}

// Prev retreats one slide as a manual navigation.
func (c *Controller) Prev() {
	c.navigated(c.engine.Prev())
}

// GoTo brings canonical index target to the front. Out-of-range targets are
// ignored and report false.
func (c *Controller) GoTo(target int) bool {
	move, ok := c.engine.GoTo(target)
	if !ok {
		return false
	}
	c.navigated(move)
	return true
}

// Tick handles a scheduled autoplay fire for gen. Stale or suspended fires
// are dropped and report false.
func (c *Controller) Tick(gen uint64) bool {
	if !c.auto.Fire(gen) {
		return false
	}
	c.last = c.engine.Next()
	c.progress.Restart(c.now())
	return true
}

// StartAuto enables autoplay with a fresh countdown.
func (c *Controller) StartAuto() {
	c.auto.Start()
	if c.auto.Armed() {
		c.progress.Restart(c.now())
	}
}

// StopAuto disables autoplay and empties the bar. Idempotent.
func (c *Controller) StopAuto() {
	c.auto.Stop()
	c.progress.Clear()
}

// Hover suspends autoplay while the pointer is over the carousel.
func (c *Controller) Hover(on bool) { c.hold(ReasonHover, on) }

// Focus suspends autoplay while the carousel has keyboard focus.
func (c *Controller) Focus(on bool) { c.hold(ReasonFocus, on) }

// DragStart begins a swipe at x in a viewport of the given width.
func (c *Controller) DragStart(x, viewport float64) {
	c.gesture.Start(x, viewport)
	c.hold(ReasonDrag, true)
}

// DragMove updates the swipe and returns the bounded visual offset.
func (c *Controller) DragMove(x float64) float64 {
	return c.gesture.Move(x)
}

// Dragging reports whether a swipe is live.
func (c *Controller) Dragging() bool { return c.gesture.Active() }

// Offset is the current overdrag offset, zero when not dragging.
func (c *Controller) Offset() float64 { return c.gesture.Overdrag() }

// DragEnd resolves the swipe into at most one rotation.
func (c *Controller) DragEnd() swipe.Outcome {
	if !c.gesture.Active() {
		return swipe.Revert
	}
	outcome := c.gesture.End()
	c.hold(ReasonDrag, false)
	switch outcome {
	case swipe.Prev:
		c.Prev()
	case swipe.Next:
		c.Next()
	}
	return outcome
}

// DragCancel abandons the swipe with no net motion.
func (c *Controller) DragCancel() {
	if !c.gesture.Active() {
		return
	}
	c.gesture.Cancel()
	c.hold(ReasonDrag, false)
}

func (c *Controller) navigated(move Move) {
	c.last = move
	c.progress.Restart(c.now())
	c.auto.Reset()
}

func (c *Controller) hold(r Reason, on bool) {
	if on {
		c.auto.Suspend(r)
		if c.auto.Running() {
			c.progress.Clear()
		}
		return
	}
	c.auto.Resume(r)
	if c.auto.Armed() && !c.progress.Running() {
		c.progress.Restart(c.now())
	}
}
