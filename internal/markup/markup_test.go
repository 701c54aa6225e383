package markup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!doctype html>
<html><body>
<div class="logos-marquee"><img src="a.svg" alt="Acme"><img src="globex.svg"></div>
<section class="carousel">
  <div class="list">
    <div class="item"><img src="img/1.jpg" alt="First"><div class="content"><div class="title">Launch</div></div></div>
    <div class="item"><a href="/two"><img src="img/2.jpg" alt="Second"></a></div>
    <div class="item"><div>no image</div></div>
  </div>
  <div class="thumbnail"></div>
  <div class="dots"><button></button><button></button><button></button></div>
  <div class="arrows"><button id="prev">&lt;</button><button id="next">&gt;</button></div>
  <div class="time"></div>
</section>
<div class="testimonial-viewport">
  <div id="testimonialTrack-1" class="testimonial-track">
    <article class="testimonial-card"><p>Great   work.</p><span class="author">Ana</span><span class="role">CTO</span></article>
    <article class="testimonial-card"><blockquote>Fast delivery</blockquote><span class="name">Bo</span></article>
  </div>
</div>
</body></html>`

func TestParseHTML_Carousel(t *testing.T) {
	layout, err := ParseHTML(strings.NewReader(page))
	require.NoError(t, err)
	require.NotNil(t, layout.Carousel, layout.CarouselReason)

	c := layout.Carousel
	require.Len(t, c.Slides, 3)
	assert.Equal(t, "img/1.jpg", c.Slides[0].Src)
	assert.Equal(t, "Launch", c.Slides[0].Caption)
	assert.Equal(t, "Second", c.Slides[1].Caption)
	assert.Equal(t, "/two", c.Slides[1].Link)
	assert.Empty(t, c.Slides[2].Src, "missing image reference is captured as empty")

	assert.True(t, c.HasThumbs)
	assert.Equal(t, []string{"img/1.jpg", "img/2.jpg", ""}, c.Thumbs, "empty thumbnail list is built from slides")
	assert.Equal(t, []int{0, 1, 2}, c.ThumbSlides, "built thumbnails map by position")
	assert.True(t, c.HasDots)
	assert.Equal(t, 3, c.Dots)
	assert.True(t, c.HasPrev)
	assert.True(t, c.HasNext)
	assert.True(t, c.HasTimeBar)
}

func TestParseHTML_TestimonialsAndLogos(t *testing.T) {
	layout, err := ParseHTML(strings.NewReader(page))
	require.NoError(t, err)

	require.Len(t, layout.Testimonials, 2)
	assert.Equal(t, "Great work.", layout.Testimonials[0].Quote)
	assert.Equal(t, "Ana", layout.Testimonials[0].Author)
	assert.Equal(t, "CTO", layout.Testimonials[0].Role)
	assert.Equal(t, "Fast delivery", layout.Testimonials[1].Quote)
	assert.Equal(t, "Bo", layout.Testimonials[1].Author)

	assert.Equal(t, []string{"Acme", "globex.svg"}, layout.Logos)
}

func TestParseHTML_MissingPiecesDisableQuietly(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		reason string
	}{
		{"no carousel", `<html><body><p>hi</p></body></html>`, "carousel not found"},
		{"no list", `<div class="carousel"><div class="dots"></div></div>`, ".list not found"},
		{"empty list", `<div class="carousel"><div class="list"></div></div>`, "no slides in .list"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := ParseHTML(strings.NewReader(tt.doc))
			require.NoError(t, err)
			assert.Nil(t, layout.Carousel)
			assert.Equal(t, tt.reason, layout.CarouselReason)
			assert.Empty(t, layout.Testimonials)
			assert.NotEmpty(t, layout.TestimonialsNote)
		})
	}
}

func TestParseHTML_CapturedThumbnailsMapBySource(t *testing.T) {
	layout, err := ParseHTML(strings.NewReader(`<div class="carousel">
<div class="list">
  <div class="item"><img src="a.jpg"></div>
  <div class="item"><img src="b.jpg"></div>
  <div class="item"><img src="a.jpg"></div>
</div>
<div class="thumbnail">
  <div class="item"><img src="b.jpg"></div>
  <div class="item"><img src="a.jpg"></div>
  <div class="item"><img src="a.jpg"></div>
  <div class="item"><img src="z.jpg"></div>
</div>
</div>`))
	require.NoError(t, err)
	require.NotNil(t, layout.Carousel)
	assert.Equal(t, []int{1, 0, 2, -1}, layout.Carousel.ThumbSlides)
}

func TestParseDeck_CaptionOnlySlidesKeepThumbnails(t *testing.T) {
	layout, err := ParseDeck([]byte("slides:\n  - caption: One\n  - caption: Two\n"))
	require.NoError(t, err)
	require.NotNil(t, layout.Carousel)
	assert.Equal(t, []string{"", ""}, layout.Carousel.Thumbs)
	assert.Equal(t, []int{0, 1}, layout.Carousel.ThumbSlides)
}

func TestParseHTML_OptionalContainersAbsent(t *testing.T) {
	layout, err := ParseHTML(strings.NewReader(`<div class="carousel"><div class="list"><div class="item"><img src="x.png"></div></div></div>`))
	require.NoError(t, err)
	require.NotNil(t, layout.Carousel)
	assert.False(t, layout.Carousel.HasThumbs)
	assert.Empty(t, layout.Carousel.Thumbs)
	assert.Empty(t, layout.Carousel.ThumbSlides)
	assert.False(t, layout.Carousel.HasDots)
	assert.Zero(t, layout.Carousel.Dots)
	assert.False(t, layout.Carousel.HasTimeBar)
}

func TestParseDeck(t *testing.T) {
	layout, err := ParseDeck([]byte(`
slides:
  - src: " img/a.jpg "
    caption: Alpha
  - src: img/b.jpg
dots: false
testimonials:
  - quote: Solid
    author: Cy
logos: ["Acme", "  "]
`))
	require.NoError(t, err)
	require.NotNil(t, layout.Carousel)
	assert.Len(t, layout.Carousel.Slides, 2)
	assert.Equal(t, "img/a.jpg", layout.Carousel.Slides[0].Src)
	assert.True(t, layout.Carousel.HasThumbs)
	assert.Equal(t, []string{"img/a.jpg", "img/b.jpg"}, layout.Carousel.Thumbs)
	assert.Equal(t, []int{0, 1}, layout.Carousel.ThumbSlides)
	assert.False(t, layout.Carousel.HasDots)
	assert.Len(t, layout.Testimonials, 1)
	assert.Equal(t, []string{"Acme"}, layout.Logos)
}

func TestParseDeck_NoSlides(t *testing.T) {
	layout, err := ParseDeck([]byte("logos: [a]\n"))
	require.NoError(t, err)
	assert.Nil(t, layout.Carousel)
	assert.Equal(t, "no slides in deck", layout.CarouselReason)
}

func TestParseDeck_Invalid(t *testing.T) {
	_, err := ParseDeck([]byte("slides: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse deck")
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(htmlPath, []byte(page), 0o644))
	layout, err := Load(htmlPath)
	require.NoError(t, err)
	assert.NotNil(t, layout.Carousel)

	deckPath := filepath.Join(dir, "deck.yml")
	require.NoError(t, os.WriteFile(deckPath, []byte("slides: [{src: a}]\n"), 0o644))
	layout, err = Load(deckPath)
	require.NoError(t, err)
	assert.NotNil(t, layout.Carousel)

	_, err = Load(filepath.Join(dir, "deck.json"))
	assert.Error(t, err)

	txt := filepath.Join(dir, "deck.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o644))
	_, err = Load(txt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported markup format")
}
