package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// handleMouse routes pointer input. Motion updates hover state and live
// drags; a left press hits controls or starts a drag; release ends it.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	x, y := msg.X, msg.Y
	m.setHover(inCarousel(y), y == rowMarquee)

	switch msg.Action {
	case tea.MouseActionMotion:
		if m.ctrl != nil && m.ctrl.Dragging() {
			m.ctrl.DragMove(float64(x))
		}
		if m.draggingCards {
			m.track.DragMove(float64(x))
		}

	case tea.MouseActionRelease:
		if m.ctrl != nil && m.ctrl.Dragging() {
			outcome := m.ctrl.DragEnd()
			m.logger.Debug("carousel swipe", zap.Stringer("outcome", outcome))
		}
		if m.draggingCards {
			m.track.DragEnd()
			m.draggingCards = false
		}

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.press(m.hitTest(x, y), x)
	}
	return m, nil
}

func (m *Model) press(h hit, x int) {
	switch h.kind {
	case hitStage:
		m.ctrl.DragStart(float64(x), float64(m.width))
	case hitPrev:
		m.ctrl.Prev()
	case hitNext:
		m.ctrl.Next()
	case hitDot:
		m.ctrl.GoTo(h.index)
	case hitThumb:
		if slide := m.thumbSlide(h.index); slide >= 0 {
			m.ctrl.GoTo(slide)
		} else {
			m.logger.Debug("thumbnail has no matching slide", zap.Int("thumb", h.index))
		}
	case hitQuotePrev:
		m.track.Prev()
	case hitQuoteNext:
		m.track.Next()
	case hitCards:
		m.track.DragStart(float64(x))
		m.draggingCards = true
	case hitMarquee:
		m.marquee.Touch(m.now())
	}
}

// setHover tracks the pointer entering and leaving the carousel and the
// logo strip.
func (m *Model) setHover(carousel, logos bool) {
	if m.ctrl != nil && carousel != m.hoverCarousel {
		m.ctrl.Hover(carousel)
	}
	m.hoverCarousel = carousel
	if m.marquee != nil && logos != m.hoverMarquee {
		m.marquee.Hover(logos)
	}
	m.hoverMarquee = logos
}

// cancelDrags abandons any live drag with no net motion.
func (m *Model) cancelDrags() {
	if m.ctrl != nil {
		m.ctrl.DragCancel()
	}
	if m.draggingCards {
		m.track.DragCancel()
		m.draggingCards = false
	}
}
