package markup

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/prxstudio/reel/internal/carousel"
	"github.com/prxstudio/reel/internal/testimonial"
)

type deckFile struct {
	Slides []struct {
		Src     string `yaml:"src"`
		Caption string `yaml:"caption"`
		Link    string `yaml:"link"`
	} `yaml:"slides"`
	Thumbnails   *bool `yaml:"thumbnails"`
	Dots         *bool `yaml:"dots"`
	Controls     *bool `yaml:"controls"`
	TimeBar      *bool `yaml:"time_bar"`
	Testimonials []struct {
		Quote  string `yaml:"quote"`
		Author string `yaml:"author"`
		Role   string `yaml:"role"`
	} `yaml:"testimonials"`
	Logos []string `yaml:"logos"`
}

// ParseDeck captures a layout from a YAML deck. Indicator lists, controls
// and the progress bar default to present.
func ParseDeck(data []byte) (Layout, error) {
	var deck deckFile
	if err := yaml.Unmarshal(data, &deck); err != nil {
		return Layout{}, fmt.Errorf("parse deck: %w", err)
	}

	var layout Layout
	if len(deck.Slides) == 0 {
		layout.CarouselReason = "no slides in deck"
	} else {
		c := &Carousel{
			HasThumbs:  enabled(deck.Thumbnails),
			HasDots:    enabled(deck.Dots),
			HasPrev:    enabled(deck.Controls),
			HasNext:    enabled(deck.Controls),
			HasTimeBar: enabled(deck.TimeBar),
		}
		for _, s := range deck.Slides {
			c.Slides = append(c.Slides, carousel.Slide{
				Src:     strings.TrimSpace(s.Src),
				Caption: strings.TrimSpace(s.Caption),
				Link:    strings.TrimSpace(s.Link),
			})
		}
		c.ensureIndicators()
		layout.Carousel = c
	}

	for _, t := range deck.Testimonials {
		layout.Testimonials = append(layout.Testimonials, testimonial.Card{
			Quote:  strings.TrimSpace(t.Quote),
			Author: strings.TrimSpace(t.Author),
			Role:   strings.TrimSpace(t.Role),
		})
	}
	if len(layout.Testimonials) == 0 {
		layout.TestimonialsNote = "no testimonials in deck"
	}

	for _, logo := range deck.Logos {
		if logo = strings.TrimSpace(logo); logo != "" {
			layout.Logos = append(layout.Logos, logo)
		}
	}
	return layout, nil
}

func enabled(v *bool) bool {
	return v == nil || *v
}
