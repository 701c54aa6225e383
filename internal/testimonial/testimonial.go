// Package testimonial implements the manual testimonial slider: a strip of
// cards that scrolls one card at a time and stops at both ends.
package testimonial

import (
	"errors"
	"math"

	"github.com/prxstudio/reel/internal/swipe"
)

// ErrNoCards is returned when the slider has nothing to show.
var ErrNoCards = errors.New("testimonial: no cards")

// DefaultGap is used when the markup does not declare a gap.
const DefaultGap = 24.0

// Card is one testimonial.
type Card struct {
	Quote  string
	Author string
	Role   string
}

// Track is the slider state.
type Track struct {
	cards    []Card
	index    int
	visible  int
	step     float64
	viewport float64
	gesture  swipe.Gesture
}

// New returns a track over cards with one visible card until Measure runs.
func New(cards []Card, params swipe.Params) (*Track, error) {
	if len(cards) == 0 {
		return nil, ErrNoCards
	}
	dup := make([]Card, len(cards))
	copy(dup, cards)
	return &Track{cards: dup, visible: 1, gesture: swipe.New(params)}, nil
}

// Measure recomputes how many cards fit and the scroll step, then clamps
// the index so the last page stays full.
func (t *Track) Measure(viewport, card, gap float64) {
	if gap <= 0 {
		gap = DefaultGap
	}
	t.viewport = viewport
	t.step = card + gap
	t.visible = 1
	if t.step > 0 {
		t.visible = max(1, int(math.Floor((viewport+gap)/t.step)))
	}
	if t.index > t.maxIndex() {
		t.index = t.maxIndex()
	}
}

// Cards returns the cards in order.
func (t *Track) Cards() []Card {
	out := make([]Card, len(t.cards))
	copy(out, t.cards)
	return out
}

// Index is the first visible card.
func (t *Track) Index() int { return t.index }

// Visible is the number of cards that fit fully.
func (t *Track) Visible() int { return t.visible }

// Window returns the cards currently in view.
func (t *Track) Window() []Card {
	end := min(len(t.cards), t.index+t.visible)
	return t.cards[t.index:end]
}

// CanPrev reports whether the previous control is enabled.
func (t *Track) CanPrev() bool { return t.index > 0 }

// CanNext reports whether the next control is enabled.
func (t *Track) CanNext() bool { return t.index < t.maxIndex() }

// Next scrolls forward one card, stopping at the last page.
func (t *Track) Next() {
	t.index = min(t.maxIndex(), t.index+1)
}

// Prev scrolls back one card, stopping at the first.
func (t *Track) Prev() {
	t.index = max(0, t.index-1)
}

// Offset is the resting scroll distance of the strip.
func (t *Track) Offset() float64 {
	return float64(t.index) * t.step
}

// DragStart begins a swipe at x.
func (t *Track) DragStart(x float64) {
	t.gesture.Start(x, t.viewport)
}

// DragMove updates the swipe and returns the rendered scroll distance,
// never scrolling before the first card.
func (t *Track) DragMove(x float64) float64 {
	t.gesture.Move(x)
	return t.Scroll()
}

// Scroll is the rendered scroll distance, following a live drag.
func (t *Track) Scroll() float64 {
	if !t.gesture.Active() {
		return t.Offset()
	}
	return math.Max(0, t.Offset()-t.gesture.Overdrag())
}

// DragEnd resolves the swipe into at most one step.
func (t *Track) DragEnd() swipe.Outcome {
	outcome := t.gesture.End()
	switch outcome {
	case swipe.Next:
		t.Next()
	case swipe.Prev:
		t.Prev()
	}
	return outcome
}

// DragCancel abandons the swipe.
func (t *Track) DragCancel() { t.gesture.Cancel() }

func (t *Track) maxIndex() int {
	return max(0, len(t.cards)-t.visible)
}
