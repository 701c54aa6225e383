package ui

import (
	"time"

	"github.com/mattn/go-runewidth"
)

// Screen rows. Every section renders to a fixed height so mouse positions
// map back to widgets without measuring the rendered output.
const (
	rowHeader      = 0
	rowStageTop    = 2
	stageHeight    = 5
	rowControls    = rowStageTop + stageHeight
	rowThumbs      = rowControls + 1
	rowProgress    = rowThumbs + 1
	rowQuotesTitle = rowProgress + 2
	rowCardsTop    = rowQuotesTitle + 1
	cardHeight     = 5
	rowMarquee     = rowCardsTop + cardHeight + 1
	rowFooter      = rowMarquee + 2
)

const (
	// MinWidth is the narrowest layout rendered; smaller terminals clip.
	MinWidth = 40

	cardWidth = 30
	cardGap   = 2

	prevLabel     = "‹ prev"
	nextLabel     = "next ›"
	quotesTitle   = "Testimonials"
	indent        = 1
	thumbMinWidth = 6
	thumbMaxWidth = 18
)

// Timing constants.
const (
	// FrameInterval drives the progress bar and the marquee.
	FrameInterval = 120 * time.Millisecond

	// DefaultPollInterval is how often the relay snapshot is re-read.
	DefaultPollInterval = time.Second
)

type hitKind int

const (
	hitNone hitKind = iota
	hitStage
	hitPrev
	hitNext
	hitDot
	hitThumb
	hitQuotePrev
	hitQuoteNext
	hitCards
	hitMarquee
)

type hit struct {
	kind  hitKind
	index int
}

func dotsX() int { return indent + runewidth.StringWidth(prevLabel) + 2 }

func dotX(i int) int { return dotsX() + 2*i }

func nextX(dots int) int {
	return dotsX() + max(0, 2*dots-1) + 2
}

func thumbWidth(count, width int) int {
	if count <= 0 {
		return thumbMaxWidth
	}
	return min(thumbMaxWidth, max(thumbMinWidth, (width-2*indent)/count))
}

func quotePrevX() int { return indent + runewidth.StringWidth(quotesTitle) + 2 }

func quoteNextX() int { return quotePrevX() + 3 }

// inCarousel reports whether row y belongs to the carousel container.
func inCarousel(y int) bool { return y >= rowStageTop && y <= rowProgress }

// hitTest maps a cell to the widget under it.
// thumbSlide is the canonical index thumbnail i navigates to, or -1.
func (m Model) thumbSlide(i int) int {
	if m.ctrl == nil || i < 0 || i >= len(m.markup.ThumbSlides) {
		return -1
	}
	slide := m.markup.ThumbSlides[i]
	if slide >= len(m.ctrl.Indicators().Thumbs) {
		return -1
	}
	return slide
}

func (m Model) hitTest(x, y int) hit {
	switch {
	case y >= rowStageTop && y < rowStageTop+stageHeight:
		if m.ctrl != nil {
			return hit{kind: hitStage}
		}
	case y == rowControls:
		if m.ctrl == nil {
			break
		}
		prevW := runewidth.StringWidth(prevLabel)
		if m.markup.HasPrev && x >= indent && x < indent+prevW {
			return hit{kind: hitPrev}
		}
		dots := m.dotCount()
		if dots > 0 && x >= dotsX() && x < dotX(dots) && (x-dotsX())%2 == 0 {
			return hit{kind: hitDot, index: (x - dotsX()) / 2}
		}
		nx := nextX(dots)
		if m.markup.HasNext && x >= nx && x < nx+runewidth.StringWidth(nextLabel) {
			return hit{kind: hitNext}
		}
	case y == rowThumbs:
		n := len(m.markup.Thumbs)
		if m.ctrl == nil || n == 0 || x < indent {
			break
		}
		if i := (x - indent) / thumbWidth(n, m.width); i < n {
			return hit{kind: hitThumb, index: i}
		}
	case y == rowQuotesTitle:
		if m.track == nil {
			break
		}
		if x == quotePrevX() {
			return hit{kind: hitQuotePrev}
		}
		if x == quoteNextX() {
			return hit{kind: hitQuoteNext}
		}
	case y >= rowCardsTop && y < rowCardsTop+cardHeight:
		if m.track != nil {
			return hit{kind: hitCards}
		}
	case y == rowMarquee:
		if m.marquee != nil && !m.marquee.Empty() {
			return hit{kind: hitMarquee}
		}
	}
	return hit{}
}
