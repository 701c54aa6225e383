package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/prxstudio/reel/internal/carousel"
	"github.com/prxstudio/reel/internal/config"
	"github.com/prxstudio/reel/internal/markup"
	"github.com/prxstudio/reel/internal/marquee"
	"github.com/prxstudio/reel/internal/prefs"
	"github.com/prxstudio/reel/internal/relay"
	"github.com/prxstudio/reel/internal/state"
	"github.com/prxstudio/reel/internal/swipe"
	"github.com/prxstudio/reel/internal/testimonial"
	"github.com/prxstudio/reel/internal/ui"
)

// Options configure the reel TUI.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/reel/prefs.toml
	Page       string // overrides the configured page
	PollEvery  time.Duration
	Logger     *zap.Logger
}

// Run boots the reel TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	page := cfg.Page
	if opts.Page != "" {
		page = opts.Page
	}

	layout, err := markup.Load(page)
	if err != nil {
		return fmt.Errorf("load page: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := relay.NewClient(cfg.RelayURL)
	if err != nil {
		return fmt.Errorf("init relay client: %w", err)
	}

	store := &state.Store{}

	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = opts.PollEvery
	}

	StartPoller(ctx, store, client, interval, logger)

	uiOpts := buildWidgets(layout, cfg, logger)
	uiOpts.Context = ctx
	uiOpts.Store = store
	uiOpts.Logger = logger
	uiOpts.PollTick = interval
	uiOpts.Prefs = userPrefs
	uiOpts.PrefsPath = opts.PrefsPath
	return ui.Run(uiOpts)
}

// buildWidgets turns a captured layout into live components. A component
// whose markup is missing is disabled and logged; it never fails the run.
func buildWidgets(layout markup.Layout, cfg config.Config, logger *zap.Logger) ui.Options {
	var opts ui.Options
	gesture := swipe.Params{ThresholdMax: cfg.SwipeThresholdMax}

	switch {
	case layout.Carousel == nil:
		opts.Reason = layout.CarouselReason
		logger.Warn("carousel disabled", zap.String("reason", layout.CarouselReason))
	default:
		ctrl, err := carousel.NewController(layout.Carousel.Slides,
			carousel.WithPeriod(cfg.Interval),
			carousel.WithSwipe(gesture),
		)
		if err != nil {
			opts.Reason = err.Error()
			logger.Warn("carousel disabled", zap.Error(err))
			break
		}
		opts.Carousel = ctrl
		opts.Markup = *layout.Carousel
		logger.Info("carousel ready",
			zap.Int("slides", len(layout.Carousel.Slides)),
			zap.Duration("interval", cfg.Interval),
		)
	}

	track, err := testimonial.New(layout.Testimonials, gesture)
	switch {
	case errors.Is(err, testimonial.ErrNoCards):
		note := layout.TestimonialsNote
		if note == "" {
			note = "no testimonial cards"
		}
		opts.TestimonialsNote = note
		logger.Info("testimonial slider skipped", zap.String("reason", note))
	case err != nil:
		opts.TestimonialsNote = err.Error()
		logger.Warn("testimonial slider disabled", zap.Error(err))
	default:
		opts.Testimonials = track
	}

	opts.Marquee = marquee.New(layout.Logos)
	if opts.Marquee.Empty() {
		logger.Info("logo marquee empty")
	}
	return opts
}
