package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/prxstudio/reel/internal/carousel"
	"github.com/prxstudio/reel/internal/markup"
	"github.com/prxstudio/reel/internal/marquee"
	"github.com/prxstudio/reel/internal/prefs"
	"github.com/prxstudio/reel/internal/state"
	"github.com/prxstudio/reel/internal/testimonial"
)

// Region is the widget holding keyboard focus.
type Region int

const (
	RegionNone Region = iota
	RegionCarousel
	RegionTestimonials
	RegionMarquee
	regionCount
)

func (r Region) String() string {
	switch r {
	case RegionCarousel:
		return "carousel"
	case RegionTestimonials:
		return "testimonials"
	case RegionMarquee:
		return "logos"
	default:
		return ""
	}
}

// Options configures the UI.
type Options struct {
	Context context.Context

	// Carousel is nil when the capture found no usable carousel; Markup
	// then only supplies Reason.
	Carousel *carousel.Controller
	Markup   markup.Carousel
	Reason   string

	Testimonials     *testimonial.Track
	TestimonialsNote string
	Marquee          *marquee.Marquee

	Store     *state.Store
	Logger    *zap.Logger
	PollTick  time.Duration
	Prefs     prefs.Prefs
	PrefsPath string

	// Now replaces time.Now, for tests. It must match the controller's clock.
	Now func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *state.Store
	logger    *zap.Logger
	prefsPath string
	prefs     prefs.Prefs
	pollTick  time.Duration
	now       func() time.Time

	// Widgets
	ctrl       *carousel.Controller
	handle     carousel.Handle
	markup     markup.Carousel
	reason     string
	track      *testimonial.Track
	quotesNote string
	marquee    *marquee.Marquee

	// UI state
	theme   Theme
	keys    keyMap
	help    help.Model
	bar     progress.Model
	width   int
	height  int
	ready   bool
	focus   Region
	focused bool // terminal focus

	hoverCarousel bool
	hoverMarquee  bool
	draggingCards bool

	// scheduledGen is the autoplay generation with a pending tick.
	scheduledGen uint64

	snapshot state.Snapshot

	showHelp    bool
	showInspect bool
}

// New creates a new Bubble Tea model. Autoplay starts when the preferences
// allow it.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultPollInterval
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := Model{
		ctx:        ctx,
		store:      opts.Store,
		logger:     logger,
		prefsPath:  prefsPath,
		prefs:      opts.Prefs,
		pollTick:   pollTick,
		now:        now,
		ctrl:       opts.Carousel,
		markup:     opts.Markup,
		reason:     opts.Reason,
		track:      opts.Testimonials,
		quotesNote: opts.TestimonialsNote,
		marquee:    opts.Marquee,
		theme:      GetTheme(opts.Prefs.Theme),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		width:      MinWidth,
		focused:    true,
	}
	if m.ctrl != nil {
		m.handle = m.ctrl
		if m.prefs.AutoplayEnabled() {
			m.ctrl.StartAuto()
		}
	}
	m.bar = newBar(m.theme, m.width)
	return m
}

func newBar(t Theme, width int) progress.Model {
	bar := progress.New(
		progress.WithSolidFill(t.Accent),
		progress.WithoutPercentage(),
		progress.WithWidth(max(1, width-2*indent)),
	)
	bar.EmptyColor = t.Border
	return bar
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.pollTick),
		frameCmd(),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model. After every message the autoplay tick is
// rescheduled if the controller re-armed.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	auto := m.scheduleAutoplay()
	return m, tea.Batch(cmd, auto)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = max(MinWidth, msg.Width)
		m.height = msg.Height
		m.ready = true
		m.bar = newBar(m.theme, m.width)
		m.help.Width = m.width
		if m.track != nil {
			m.track.Measure(float64(m.width-2*indent), cardWidth, cardGap)
		}
		return m, nil

	case tea.FocusMsg:
		m.focused = true
		m.applyFocus(RegionNone, m.focus)
		return m, nil

	case tea.BlurMsg:
		m.applyFocus(m.focus, RegionNone)
		m.focused = false
		m.cancelDrags()
		m.setHover(false, false)
		return m, nil

	case autoplayMsg:
		if m.ctrl != nil && m.ctrl.Tick(msg.gen) {
			m.logger.Debug("autoplay advanced", zap.Int("active", m.ctrl.Engine().ActiveIndex()))
		}
		return m, nil

	case frameMsg:
		if m.marquee != nil {
			m.marquee.Step(time.Time(msg))
		}
		return m, frameCmd()

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(m.pollTick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil
	}
	return m, nil
}

// scheduleAutoplay returns a tick for the current autoplay generation when
// one is armed and not yet scheduled.
func (m *Model) scheduleAutoplay() tea.Cmd {
	if m.ctrl == nil {
		return nil
	}
	auto := m.ctrl.Autoplay()
	gen := auto.Generation()
	if !auto.Armed() || gen == m.scheduledGen {
		return nil
	}
	m.scheduledGen = gen
	return autoplayCmd(auto.Period(), gen)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showInspect {
		return m.renderInspect()
	}
	return m.renderMain()
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showInspect {
		return m.handleInspectKey(msg)
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Inspect):
		m.showInspect = m.handle != nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.bar = newBar(m.theme, m.width)
		m.prefs.Theme = m.theme.Name
		m.savePrefs()

	case key.Matches(msg, m.keys.Tab):
		m.setFocus((m.focus + 1) % regionCount)

	case key.Matches(msg, m.keys.ShiftTab):
		m.setFocus((m.focus + regionCount - 1) % regionCount)

	case key.Matches(msg, m.keys.Escape):
		m.setFocus(RegionNone)

	case key.Matches(msg, m.keys.Prev):
		if m.focus == RegionTestimonials && m.track != nil {
			m.track.Prev()
		} else if m.handle != nil {
			m.handle.Prev()
		}

	case key.Matches(msg, m.keys.Next):
		if m.focus == RegionTestimonials && m.track != nil {
			m.track.Next()
		} else if m.handle != nil {
			m.handle.Next()
		}

	case key.Matches(msg, m.keys.Jump):
		if m.handle != nil {
			m.handle.GoTo(int(msg.Runes[0] - '1'))
		}

	case key.Matches(msg, m.keys.ToggleAuto):
		m.toggleAutoplay()

	case key.Matches(msg, m.keys.PrevQuote):
		if m.track != nil {
			m.track.Prev()
		}

	case key.Matches(msg, m.keys.NextQuote):
		if m.track != nil {
			m.track.Next()
		}

	case key.Matches(msg, m.keys.TouchMarquee):
		if m.marquee != nil && m.focus == RegionMarquee {
			m.marquee.Touch(m.now())
		}
	}
	return m, nil
}

// handleInspectKey drives the carousel through the debug handle while the
// order overlay is open. Any other key closes it.
func (m Model) handleInspectKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Prev):
		m.handle.Prev()
	case key.Matches(msg, m.keys.Next):
		m.handle.Next()
	case key.Matches(msg, m.keys.Jump):
		m.handle.GoTo(int(msg.Runes[0] - '1'))
	case key.Matches(msg, m.keys.ToggleAuto):
		m.toggleAutoplay()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	default:
		m.showInspect = false
	}
	return m, nil
}

func (m *Model) toggleAutoplay() {
	if m.handle == nil {
		return
	}
	on := !m.ctrl.Autoplay().Running()
	if on {
		m.handle.StartAuto()
	} else {
		m.handle.StopAuto()
	}
	m.prefs = m.prefs.WithAutoplay(on)
	m.savePrefs()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save prefs failed", zap.Error(err))
	}
}

func (m *Model) setFocus(r Region) {
	if m.focused {
		m.applyFocus(m.focus, r)
	}
	m.focus = r
}

// applyFocus moves focus-driven pauses from one region to another.
func (m *Model) applyFocus(from, to Region) {
	if from == to {
		return
	}
	if m.ctrl != nil {
		if from == RegionCarousel {
			m.ctrl.Focus(false)
		}
		if to == RegionCarousel {
			m.ctrl.Focus(true)
		}
	}
	if m.marquee != nil {
		m.marquee.Focus(to == RegionMarquee)
	}
}

// renderMain renders the full screen.
func (m Model) renderMain() string {
	sections := []string{
		m.renderHeader(),
		"",
		m.renderCarousel(),
		"",
		m.renderTestimonials(),
		"",
		m.renderMarquee(),
		"",
		m.renderFooter(),
	}
	return strings.Join(sections, "\n")
}

// Messages

type tickMsg time.Time

type frameMsg time.Time

type autoplayMsg struct{ gen uint64 }

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func frameCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func autoplayCmd(period time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(period, func(time.Time) tea.Msg {
		return autoplayMsg{gen: gen}
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until it exits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	return err
}
