// Package swipe resolves pointer drags into single-step navigation.
//
// A Gesture tracks the net horizontal displacement of one drag. While the
// drag is live the rendered offset is clamped to a fraction of the viewport
// (overdrag); when it ends the displacement is compared against a threshold
// and collapses to exactly one step back, one step forward, or nothing.
package swipe

import "math"

// Default ratios and caps, matching the site's touch handling.
const (
	DefaultThresholdRatio = 0.12
	DefaultThresholdMax   = 60.0
	DefaultOverdragRatio  = 0.25
)

// Outcome is the navigation a finished gesture resolves to.
type Outcome int

const (
	// Revert means the drag stayed under the threshold; net motion is zero.
	Revert Outcome = iota
	// Prev means the content was dragged toward the right.
	Prev
	// Next means the content was dragged toward the left.
	Next
)

func (o Outcome) String() string {
	switch o {
	case Prev:
		return "prev"
	case Next:
		return "next"
	default:
		return "revert"
	}
}

// Params tunes threshold and overdrag. Zero fields use defaults.
type Params struct {
	ThresholdRatio float64
	ThresholdMax   float64
	OverdragRatio  float64
}

func (p Params) withDefaults() Params {
	if p.ThresholdRatio <= 0 {
		p.ThresholdRatio = DefaultThresholdRatio
	}
	if p.ThresholdMax <= 0 {
		p.ThresholdMax = DefaultThresholdMax
	}
	if p.OverdragRatio <= 0 {
		p.OverdragRatio = DefaultOverdragRatio
	}
	return p
}

// Threshold returns the minimum displacement that counts as a swipe for a
// viewport of the given width.
func (p Params) Threshold(viewport float64) float64 {
	p = p.withDefaults()
	return math.Min(viewport*p.ThresholdRatio, p.ThresholdMax)
}

// Gesture is one drag in progress. The zero value is idle.
type Gesture struct {
	params   Params
	viewport float64
	startX   float64
	dx       float64
	active   bool
}

// New returns an idle gesture using params.
func New(params Params) Gesture {
	return Gesture{params: params.withDefaults()}
}

// Active reports whether a drag is in progress.
func (g *Gesture) Active() bool { return g.active }

// Displacement is the raw net displacement of the live drag.
func (g *Gesture) Displacement() float64 { return g.dx }

// Start begins a drag at x inside a viewport of the given width.
func (g *Gesture) Start(x, viewport float64) {
	g.params = g.params.withDefaults()
	g.active = true
	g.startX = x
	g.viewport = viewport
	g.dx = 0
}

// Move records the pointer at x and returns the bounded visual offset.
func (g *Gesture) Move(x float64) float64 {
	if !g.active {
		return 0
	}
	g.dx = x - g.startX
	return g.Overdrag()
}

// Overdrag is the live displacement clamped to the overdrag band.
func (g *Gesture) Overdrag() float64 {
	if !g.active {
		return 0
	}
	limit := g.viewport * g.params.OverdragRatio
	return math.Max(-limit, math.Min(limit, g.dx))
}

// End finishes the drag and resolves it. Ending an idle gesture reverts.
func (g *Gesture) End() Outcome {
	if !g.active {
		return Revert
	}
	threshold := g.params.Threshold(g.viewport)
	dx := g.dx
	g.reset()
	switch {
	case dx > threshold:
		return Prev
	case dx < -threshold:
		return Next
	default:
		return Revert
	}
}

// Cancel abandons the drag without navigating.
func (g *Gesture) Cancel() {
	g.reset()
}

func (g *Gesture) reset() {
	g.active = false
	g.dx = 0
	g.startX = 0
}
