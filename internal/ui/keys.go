package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Escape     key.Binding
	Inspect    key.Binding

	// Carousel
	Prev         key.Binding
	Next         key.Binding
	Jump         key.Binding
	ToggleAuto   key.Binding
	PrevQuote    key.Binding
	NextQuote    key.Binding
	TouchMarquee key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Move focus"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Move focus back"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear focus"),
		),
		Inspect: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "Inspect order"),
		),

		Prev: key.NewBinding(
			key.WithKeys("left", "p"),
			key.WithHelp("←/p", "Previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "n"),
			key.WithHelp("→/n", "Next"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Go to slide"),
		),
		ToggleAuto: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Start/stop autoplay"),
		),
		PrevQuote: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Previous testimonial"),
		),
		NextQuote: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Next testimonial"),
		),
		TouchMarquee: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Hold logos"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.ToggleAuto, k.Tab, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Jump, k.ToggleAuto},
		{k.PrevQuote, k.NextQuote, k.TouchMarquee},
		{k.Tab, k.ShiftTab, k.Escape},
		{k.Inspect, k.CycleTheme, k.Help, k.Quit},
	}
}
