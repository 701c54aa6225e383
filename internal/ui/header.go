package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/prxstudio/reel/internal/relay"
)

// renderHeader renders the logo, autoplay state, focus and relay status on
// one line.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	left := []string{bg.Render("reel", styles.Logo)}
	if m.ctrl != nil {
		left = append(left, bg.Render(m.autoplayLabel(), styles.MutedText))
	}
	if m.focused && m.focus != RegionNone {
		left = append(left, bg.Render("focus: "+m.focus.String(), styles.AccentText))
	}
	right := m.relayLabel(bg, styles)

	line := bg.Join(left, "  ·  ")
	gap := m.width - lipgloss.Width(line) - lipgloss.Width(right) - 2
	return bg.FillLine(bg.Space()+line+bg.Spaces(max(1, gap))+right, m.width)
}

func (m Model) autoplayLabel() string {
	auto := m.ctrl.Autoplay()
	switch {
	case !auto.Running():
		return "■ stopped"
	case auto.Suspended():
		return "❚❚ paused"
	default:
		return fmt.Sprintf("▶ every %s", auto.Period())
	}
}

func (m Model) relayLabel(bg BgStyle, styles Styles) string {
	snap := m.snapshot
	switch {
	case m.store == nil:
		return ""
	case snap.IsOffline():
		return bg.Render("relay offline", styles.DangerText)
	case !snap.HasRelay:
		return bg.Render("relay: waiting", styles.FaintText)
	}

	st := snap.Relay
	parts := []string{
		bg.Render(fmt.Sprintf("sent %d", st.Sent), styles.OutcomeStyle(string(relay.OutcomeSent))),
		bg.Render(fmt.Sprintf("rejected %d", st.Rejected), styles.OutcomeStyle(string(relay.OutcomeInvalid))),
		bg.Render(fmt.Sprintf("failed %d", st.Failed), styles.OutcomeStyle(string(relay.OutcomeFailed))),
	}
	if n := len(st.Recent); n > 0 {
		last := st.Recent[n-1]
		label := "last: " + string(last.Outcome)
		if last.Company != "" {
			label += " (" + truncate(last.Company, 16) + ")"
		}
		parts = append(parts, bg.Render(label, styles.OutcomeStyle(string(last.Outcome))))
	}
	return bg.Render("relay", styles.MutedText) + bg.Space() + strings.Join(parts, bg.Sep(" "))
}
