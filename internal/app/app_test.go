package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/prxstudio/reel/internal/carousel"
	"github.com/prxstudio/reel/internal/config"
	"github.com/prxstudio/reel/internal/markup"
	"github.com/prxstudio/reel/internal/testimonial"
)

func testConfig() config.Config {
	return config.Config{Interval: 5 * time.Second, SwipeThresholdMax: 60}
}

func TestBuildWidgets_AllPresent(t *testing.T) {
	layout := markup.Layout{
		Carousel: &markup.Carousel{
			Slides: []carousel.Slide{{ID: "a", Src: "a.jpg"}, {ID: "b", Src: "b.jpg"}},
		},
		Testimonials: []testimonial.Card{{Quote: "Great", Author: "Ana"}},
		Logos:        []string{"Acme", "Globex"},
	}

	opts := buildWidgets(layout, testConfig(), zap.NewNop())

	require.NotNil(t, opts.Carousel)
	assert.Equal(t, 5*time.Second, opts.Carousel.Autoplay().Period())
	assert.Len(t, opts.Markup.Slides, 2)
	assert.Empty(t, opts.Reason)
	require.NotNil(t, opts.Testimonials)
	assert.Len(t, opts.Testimonials.Cards(), 1)
	require.NotNil(t, opts.Marquee)
	assert.False(t, opts.Marquee.Empty())
}

func TestBuildWidgets_MissingMarkupDisables(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	layout := markup.Layout{
		CarouselReason:   "no .carousel root",
		TestimonialsNote: "no testimonial track",
	}

	opts := buildWidgets(layout, testConfig(), zap.New(core))

	assert.Nil(t, opts.Carousel)
	assert.Equal(t, "no .carousel root", opts.Reason)
	assert.Nil(t, opts.Testimonials)
	assert.Equal(t, "no testimonial track", opts.TestimonialsNote)
	assert.True(t, opts.Marquee.Empty())

	assert.Equal(t, 1, logs.FilterMessage("carousel disabled").Len())
	skipped := logs.FilterMessage("testimonial slider skipped").All()
	require.Len(t, skipped, 1)
	assert.Equal(t, zapcore.InfoLevel, skipped[0].Level)
}

func TestBuildWidgets_EmptySlideList(t *testing.T) {
	layout := markup.Layout{Carousel: &markup.Carousel{}}

	opts := buildWidgets(layout, testConfig(), zap.NewNop())

	assert.Nil(t, opts.Carousel)
	assert.Contains(t, opts.Reason, "no slides")
}

func TestRunRelay_WarnsOnMissingMailConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	mailPath := filepath.Join(dir, "mail.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[relay]\nmail_config = \""+mailPath+"\"\n"), 0o644))

	core, logs := observer.New(zapcore.InfoLevel)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunRelay(ctx, RelayOptions{ConfigPath: cfgPath, Bind: "127.0.0.1:0", Logger: zap.New(core)})
	require.NoError(t, err)

	warned := logs.FilterMessageSnippet("mail config not found").All()
	require.Len(t, warned, 1)
	assert.Equal(t, mailPath, warned[0].ContextMap()["path"])
}
