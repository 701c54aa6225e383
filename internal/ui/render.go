package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/prxstudio/reel/internal/carousel"
	"github.com/prxstudio/reel/internal/testimonial"
)

// renderCarousel renders rows rowStageTop through rowProgress.
func (m Model) renderCarousel() string {
	styles := m.theme.Styles()
	if m.ctrl == nil {
		box := styles.Panel.Width(m.width - 2).Render(strings.Join([]string{
			styles.WarningText.Render("carousel disabled"),
			styles.MutedText.Render(truncate(m.reason, m.width-4)),
			"",
		}, "\n"))
		lines := fitLines(strings.Split(box, "\n"), stageHeight)
		return strings.Join(fitLines(lines, rowProgress-rowStageTop+1), "\n")
	}

	lines := m.renderStage()
	lines = append(lines, m.renderControls(), m.renderThumbs(), m.renderProgress())
	return strings.Join(lines, "\n")
}

// renderStage renders the head slide and the queue behind it, displaced by
// any live drag.
func (m Model) renderStage() []string {
	styles := m.theme.Styles()
	engine := m.ctrl.Engine()
	inner := m.width - 4
	head := engine.Head()

	travel := " "
	switch m.ctrl.LastMove().Direction {
	case carousel.DirLeft:
		travel = "▶"
	case carousel.DirRight:
		travel = "◀"
	}
	counter := fmt.Sprintf("%s %d/%d  ", travel, engine.ActiveIndex()+1, engine.Len())
	title := styles.AccentText.Render(counter) +
		styles.Text.Bold(true).Render(truncate(slideLabel(head.Caption, head.Src), inner-runewidth.StringWidth(counter)))

	detail := head.Src
	if head.Link != "" {
		detail = strings.TrimSpace(detail + "  → " + head.Link)
	}

	physical := engine.Physical()
	upNext := make([]string, 0, len(physical)-1)
	for _, s := range physical[1:] {
		upNext = append(upNext, slideLabel(s.Caption, s.Src))
	}
	queue := ""
	if len(upNext) > 0 {
		queue = "up next: " + strings.Join(upNext, " · ")
	}

	panel := styles.Panel
	if m.focus == RegionCarousel && m.focused {
		panel = styles.FocusedPanel
	}
	box := panel.Width(m.width - 2).Render(strings.Join([]string{
		title,
		styles.MutedText.Render(truncate(detail, inner)),
		styles.FaintText.Render(truncate(queue, inner)),
	}, "\n"))

	lines := fitLines(strings.Split(box, "\n"), stageHeight)
	if off := int(m.ctrl.Offset()); off != 0 {
		for i := range lines {
			lines[i] = shift(lines[i], off, m.width)
		}
	}
	return lines
}

// renderControls renders prev, dots and next at the columns hitTest expects.
func (m Model) renderControls() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", indent))
	if m.markup.HasPrev {
		b.WriteString(styles.AccentText.Render(prevLabel))
	} else {
		b.WriteString(strings.Repeat(" ", runewidth.StringWidth(prevLabel)))
	}
	b.WriteString("  ")

	dots := m.dotCount()
	ind := m.ctrl.Indicators()
	for i := 0; i < dots; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if i < len(ind.Dots) && ind.Dots[i] {
			b.WriteString(styles.AccentText.Render("●"))
		} else {
			b.WriteString(styles.FaintText.Render("○"))
		}
	}
	if dots > 0 {
		b.WriteString("  ")
	}
	if m.markup.HasNext {
		b.WriteString(styles.AccentText.Render(nextLabel))
	}
	return b.String()
}

func (m Model) dotCount() int {
	if !m.markup.HasDots {
		return 0
	}
	return m.markup.Dots
}

// renderThumbs renders one fixed-width cell per thumbnail. A cell is
// highlighted when the slide it maps to is the synced active thumbnail.
func (m Model) renderThumbs() string {
	thumbs := m.markup.Thumbs
	if !m.markup.HasThumbs || len(thumbs) == 0 {
		return ""
	}
	styles := m.theme.Styles()
	slides := m.ctrl.CanonicalOrder()
	selected := m.selectedThumbs()
	tw := thumbWidth(len(thumbs), m.width)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", indent))
	for i, src := range thumbs {
		label := fmt.Sprintf("%d %s", i+1, slideLabel("", src))
		slide := m.thumbSlide(i)
		if slide >= 0 {
			label = fmt.Sprintf("%d %s", i+1, slideLabel(slides[slide].Caption, slides[slide].Src))
		}
		cell := padRight(" "+truncate(label, tw-2), tw)
		if selected[i] {
			b.WriteString(styles.Selected.Render(cell))
		} else {
			b.WriteString(styles.MutedText.Render(cell))
		}
	}
	return shift(b.String(), 0, m.width)
}

// selectedThumbs reports, per thumbnail cell, whether it is the active one.
func (m Model) selectedThumbs() []bool {
	ind := m.ctrl.Indicators()
	selected := make([]bool, len(m.markup.Thumbs))
	for i := range selected {
		if slide := m.thumbSlide(i); slide >= 0 {
			selected[i] = ind.Thumbs[slide]
		}
	}
	return selected
}

func (m Model) renderProgress() string {
	if !m.markup.HasTimeBar {
		return ""
	}
	return strings.Repeat(" ", indent) + m.bar.ViewAs(m.ctrl.Progress())
}

// renderTestimonials renders the title row and the card strip.
func (m Model) renderTestimonials() string {
	styles := m.theme.Styles()
	if m.track == nil {
		lines := []string{
			strings.Repeat(" ", indent) + styles.FaintText.Render(quotesTitle),
			strings.Repeat(" ", indent) + styles.FaintText.Render(truncate(m.quotesNote, m.width-2)),
		}
		return strings.Join(fitLines(lines, 1+cardHeight), "\n")
	}

	button := func(label string, enabled bool) string {
		if enabled {
			return styles.AccentText.Render(label)
		}
		return styles.FaintText.Render(label)
	}
	titleStyle := styles.Text.Bold(true)
	if m.focus == RegionTestimonials && m.focused {
		titleStyle = styles.AccentText.Bold(true)
	}
	window := m.track.Window()
	total := len(m.track.Cards())
	first := m.track.Index() + 1
	title := strings.Repeat(" ", indent) + titleStyle.Render(quotesTitle) + "  " +
		button("‹", m.track.CanPrev()) + "  " + button("›", m.track.CanNext()) +
		styles.FaintText.Render(fmt.Sprintf("   %d–%d of %d", first, first+len(window)-1, total))

	cards := make([]string, 0, 2*len(window))
	for i, c := range window {
		if i > 0 {
			cards = append(cards, strings.Repeat(" ", cardGap))
		}
		cards = append(cards, m.renderCard(c))
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	drag := int(m.track.Offset() - m.track.Scroll())
	lines := fitLines(strings.Split(strip, "\n"), cardHeight)
	for i := range lines {
		lines[i] = shift(strings.Repeat(" ", indent)+lines[i], drag, m.width)
	}
	return strings.Join(append([]string{title}, lines...), "\n")
}

func (m Model) renderCard(c testimonial.Card) string {
	styles := m.theme.Styles()
	inner := cardWidth - 4
	return styles.Panel.Width(cardWidth - 2).Render(strings.Join([]string{
		styles.Text.Italic(true).Render(truncate("“"+c.Quote+"”", inner)),
		styles.AccentText.Render(truncate("— "+c.Author, inner)),
		styles.MutedText.Render(truncate(c.Role, inner)),
	}, "\n"))
}

func (m Model) renderMarquee() string {
	if m.marquee == nil || m.marquee.Empty() {
		return ""
	}
	styles := m.theme.Styles()
	style := styles.MutedText
	if m.focus == RegionMarquee && m.focused {
		style = styles.AccentText
	}
	return strings.Repeat(" ", indent) + style.Render(m.marquee.Window(m.width-2*indent))
}

func (m Model) renderFooter() string {
	return strings.Repeat(" ", indent) + m.help.View(m.keys)
}

// renderInspect lists canonical and physical order through the debug handle.
func (m Model) renderInspect() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Carousel order"))
	b.WriteString("\n\n")

	order := m.handle.CanonicalOrder()
	active := m.ctrl.Engine().ActiveIndex()
	for i, s := range order {
		marker := "  "
		if i == active {
			marker = styles.AccentText.Render("▶ ")
		}
		fmt.Fprintf(&b, "%s%d  %s  %s\n", marker, i, styles.FaintText.Render(s.ID[:min(8, len(s.ID))]), slideLabel(s.Caption, s.Src))
	}

	b.WriteString("\n")
	physical := make([]string, 0, len(order))
	for _, s := range m.ctrl.Engine().Physical() {
		physical = append(physical, slideLabel(s.Caption, s.Src))
	}
	b.WriteString(styles.MutedText.Render("physical: " + strings.Join(physical, ", ")))

	auto := m.ctrl.Autoplay()
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("autoplay: running=%t suspended=%t gen=%d", auto.Running(), auto.Suspended(), auto.Generation())))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("←/→ step · 1-9 go to · space autoplay · any other key closes"))

	modal := styles.FocusedPanel.Padding(1, 2).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
