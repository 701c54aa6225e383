// Package markup captures widget structure from a page or a deck file.
//
// HTML pages are walked with golang.org/x/net/html looking for the same
// container structure the site's scripts expect:
//
//	.carousel
//	  .list > .item img[src]        slides (required)
//	  .thumbnail > .item img[src]   thumbnails (optional, built when empty)
//	  .dots > button                dot indicators (optional, built when empty)
//	  #prev, #next                  controls (optional)
//	  .time                         progress bar (optional)
//	.testimonial-track > .testimonial-card
//	.logos-marquee img[alt]
//
// YAML decks describe the same content directly. Missing pieces never fail
// the capture; they disable the matching widget and record why.
package markup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/prxstudio/reel/internal/carousel"
	"github.com/prxstudio/reel/internal/testimonial"
)

// Layout is everything captured from one source.
type Layout struct {
	Carousel       *Carousel
	CarouselReason string // why Carousel is nil

	Testimonials     []testimonial.Card
	TestimonialsNote string

	Logos []string
}

// Carousel is the captured carousel container.
type Carousel struct {
	Slides []carousel.Slide

	// Thumbs holds the image reference of each thumbnail in markup order.
	// When the thumbnail list exists but is empty it is built from Slides.
	Thumbs    []string
	HasThumbs bool

	// ThumbSlides holds the canonical slide index of each thumbnail, -1
	// when its reference matches no slide.
	ThumbSlides []int

	Dots    int
	HasDots bool

	HasPrev    bool
	HasNext    bool
	HasTimeBar bool
}

// ensureIndicators builds thumbnails and dots from the canonical order when
// their containers are present but empty, and resolves each thumbnail to a
// canonical index. Built thumbnails map by position; captured ones by source.
func (c *Carousel) ensureIndicators() {
	switch {
	case !c.HasThumbs:
	case len(c.Thumbs) == 0:
		c.Thumbs = make([]string, len(c.Slides))
		c.ThumbSlides = make([]int, len(c.Slides))
		for i, s := range c.Slides {
			c.Thumbs[i] = s.Src
			c.ThumbSlides[i] = i
		}
	default:
		c.ThumbSlides = carousel.MatchThumbnails(c.Slides, c.Thumbs)
	}
	if c.HasDots && c.Dots == 0 {
		c.Dots = len(c.Slides)
	}
}

// Load reads path and captures its layout. The format is chosen by file
// extension: .html/.htm pages or .yaml/.yml decks.
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read markup: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ParseHTML(strings.NewReader(string(data)))
	case ".yaml", ".yml":
		return ParseDeck(data)
	default:
		return Layout{}, fmt.Errorf("unsupported markup format %q", filepath.Ext(path))
	}
}
