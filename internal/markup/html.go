package markup

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/prxstudio/reel/internal/carousel"
	"github.com/prxstudio/reel/internal/testimonial"
)

var testimonialTrackIDs = []string{"testimonialTrack", "testimonialTrack-1", "testimonialTrack1"}

// ParseHTML captures a layout from an HTML document.
func ParseHTML(r io.Reader) (Layout, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Layout{}, fmt.Errorf("parse html: %w", err)
	}

	var layout Layout
	layout.Carousel, layout.CarouselReason = captureCarousel(doc)
	layout.Testimonials, layout.TestimonialsNote = captureTestimonials(doc)
	layout.Logos = captureLogos(doc)
	return layout, nil
}

func captureCarousel(doc *html.Node) (*Carousel, string) {
	root := findFirst(doc, withClass("carousel"))
	if root == nil {
		return nil, "carousel not found"
	}
	list := findFirst(root, withClass("list"))
	if list == nil {
		return nil, ".list not found"
	}

	c := &Carousel{}
	for _, item := range findAll(list, withClass("item")) {
		c.Slides = append(c.Slides, captureSlide(item))
	}
	if len(c.Slides) == 0 {
		return nil, "no slides in .list"
	}

	if thumbs := findFirst(root, withClass("thumbnail")); thumbs != nil {
		c.HasThumbs = true
		for _, item := range findAll(thumbs, withClass("item")) {
			c.Thumbs = append(c.Thumbs, imgSrc(item))
		}
	}
	if dots := findFirst(root, withClass("dots")); dots != nil {
		c.HasDots = true
		c.Dots = len(findAll(dots, withTag("button")))
	}
	c.HasPrev = findFirst(root, withID("prev")) != nil
	c.HasNext = findFirst(root, withID("next")) != nil
	c.HasTimeBar = findFirst(root, withClass("time")) != nil
	c.ensureIndicators()
	return c, ""
}

func captureSlide(item *html.Node) carousel.Slide {
	s := carousel.Slide{Src: imgSrc(item)}
	if img := findFirst(item, withTag("img")); img != nil {
		s.Caption = strings.TrimSpace(attr(img, "alt"))
	}
	if title := findFirst(item, withClass("title")); title != nil {
		if text := textContent(title); text != "" {
			s.Caption = text
		}
	}
	if a := findFirst(item, withTag("a")); a != nil {
		s.Link = strings.TrimSpace(attr(a, "href"))
	}
	return s
}

func captureTestimonials(doc *html.Node) ([]testimonial.Card, string) {
	var track *html.Node
	for _, id := range testimonialTrackIDs {
		if track = findFirst(doc, withID(id)); track != nil {
			break
		}
	}
	if track == nil {
		track = findFirst(doc, withClass("testimonial-track"))
	}
	if track == nil {
		return nil, "no testimonial track found"
	}

	var cards []testimonial.Card
	for _, n := range findAll(track, withClass("testimonial-card")) {
		card := testimonial.Card{}
		if q := findFirst(n, anyOf(withTag("blockquote"), withTag("p"), withClass("quote"))); q != nil {
			card.Quote = textContent(q)
		}
		if a := findFirst(n, anyOf(withClass("author"), withClass("name"))); a != nil {
			card.Author = textContent(a)
		}
		if r := findFirst(n, anyOf(withClass("role"), withClass("company"))); r != nil {
			card.Role = textContent(r)
		}
		if card.Quote == "" {
			card.Quote = textContent(n)
		}
		cards = append(cards, card)
	}
	if len(cards) == 0 {
		return nil, "no testimonial cards found"
	}
	return cards, ""
}

func captureLogos(doc *html.Node) []string {
	marquee := findFirst(doc, withClass("logos-marquee"))
	if marquee == nil {
		return nil
	}
	var logos []string
	for _, img := range findAll(marquee, withTag("img")) {
		name := strings.TrimSpace(attr(img, "alt"))
		if name == "" {
			name = strings.TrimSpace(attr(img, "src"))
		}
		if name != "" {
			logos = append(logos, name)
		}
	}
	return logos
}

type matcher func(*html.Node) bool

func withClass(class string) matcher {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, c := range strings.Fields(attr(n, "class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

func withID(id string) matcher {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "id") == id
	}
}

func withTag(tag string) matcher {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func anyOf(ms ...matcher) matcher {
	return func(n *html.Node) bool {
		for _, m := range ms {
			if m(n) {
				return true
			}
		}
		return false
	}
}

// findFirst returns the first descendant of n (excluding n) matching m,
// in document order.
func findFirst(n *html.Node, m matcher) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if m(c) {
			return c
		}
		if found := findFirst(c, m); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns matching descendants in document order without
// descending into matches.
func findAll(n *html.Node, m matcher) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if m(c) {
				out = append(out, c)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// imgSrc returns the src of the first img under n, empty when missing.
func imgSrc(n *html.Node) string {
	img := findFirst(n, withTag("img"))
	if img == nil {
		return ""
	}
	return strings.TrimSpace(attr(img, "src"))
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
			b.WriteByte(' ')
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
