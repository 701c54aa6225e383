package carousel

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrNoSlides is returned when a carousel is captured without slides.
var ErrNoSlides = errors.New("carousel: no slides")

// Slide is one captured carousel item. ID is assigned at capture time and is
// the only identity used for lookups; Src may repeat or be empty.
type Slide struct {
	ID      string
	Src     string
	Caption string
	Link    string
}

// Direction is the way the physical order travelled on the last rotation.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// Move describes a completed rotation.
type Move struct {
	Direction Direction
	Steps     int
}

// Indicators is the synced state of the dot and thumbnail lists.
type Indicators struct {
	Active int
	Dots   []bool
	Thumbs []bool
}

// Engine owns the canonical and physical slide orders.
type Engine struct {
	canonical []Slide
	index     map[string]int // slide ID -> canonical index
	physical  []string       // slide IDs, head is the visible slide
}

// New captures slides in presentation order. Slides without an ID get a
// fresh one. It returns ErrNoSlides for an empty capture.
func New(slides []Slide) (*Engine, error) {
	if len(slides) == 0 {
		return nil, ErrNoSlides
	}
	e := &Engine{
		canonical: make([]Slide, len(slides)),
		index:     make(map[string]int, len(slides)),
		physical:  make([]string, len(slides)),
	}
	for i, s := range slides {
		s.Src = strings.TrimSpace(s.Src)
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		if _, dup := e.index[s.ID]; dup {
			s.ID = uuid.NewString()
		}
		e.canonical[i] = s
		e.index[s.ID] = i
		e.physical[i] = s.ID
	}
	return e, nil
}

// Len is the number of slides.
func (e *Engine) Len() int { return len(e.canonical) }

// Canonical returns a copy of the canonical order.
func (e *Engine) Canonical() []Slide {
	out := make([]Slide, len(e.canonical))
	copy(out, e.canonical)
	return out
}

// Physical returns a copy of the current display order.
func (e *Engine) Physical() []Slide {
	out := make([]Slide, len(e.physical))
	for i, id := range e.physical {
		out[i] = e.canonical[e.index[id]]
	}
	return out
}

// Head is the visible slide.
func (e *Engine) Head() Slide {
	return e.canonical[e.ActiveIndex()]
}

// ActiveIndex is the canonical index of the head slide.
func (e *Engine) ActiveIndex() int {
	if idx, ok := e.index[e.physical[0]]; ok {
		return idx
	}
	return 0
}

// RotateLeft moves the head to the tail n times.
func (e *Engine) RotateLeft(n int) Move {
	n = e.normalize(n)
	if n == 0 {
		return Move{}
	}
	for k := 0; k < n; k++ {
		head := e.physical[0]
		copy(e.physical, e.physical[1:])
		e.physical[len(e.physical)-1] = head
	}
	return Move{Direction: DirLeft, Steps: n}
}

// RotateRight moves the tail to the head n times.
func (e *Engine) RotateRight(n int) Move {
	n = e.normalize(n)
	if n == 0 {
		return Move{}
	}
	last := len(e.physical) - 1
	for k := 0; k < n; k++ {
		tail := e.physical[last]
		copy(e.physical[1:], e.physical[:last])
		e.physical[0] = tail
	}
	return Move{Direction: DirRight, Steps: n}
}

// Next advances one slide.
func (e *Engine) Next() Move { return e.RotateLeft(1) }

// Prev retreats one slide.
func (e *Engine) Prev() Move { return e.RotateRight(1) }

// GoTo brings the slide at canonical index target to the head using the
// shorter rotation. ok is false when target is out of range or the slide
// cannot be located; in that case nothing changes.
func (e *Engine) GoTo(target int) (move Move, ok bool) {
	if target < 0 || target >= len(e.canonical) {
		return Move{}, false
	}
	p := e.position(e.canonical[target].ID)
	if p < 0 {
		return Move{}, false
	}
	if p == 0 {
		return Move{}, true
	}
	total := len(e.physical)
	if p <= total/2 {
		return e.RotateLeft(p), true
	}
	return e.RotateRight(total - p), true
}

// Indicators marks exactly one dot and one thumbnail active.
func (e *Engine) Indicators() Indicators {
	active := e.ActiveIndex()
	ind := Indicators{
		Active: active,
		Dots:   make([]bool, len(e.canonical)),
		Thumbs: make([]bool, len(e.canonical)),
	}
	ind.Dots[active] = true
	ind.Thumbs[active] = true
	return ind
}

// MatchThumbnails maps thumbnail image references onto canonical indexes.
// Each reference takes the first slide with the same Src that no earlier
// thumbnail has claimed, so repeated sources map to distinct slides. Empty
// or unknown references map to -1.
func MatchThumbnails(slides []Slide, srcs []string) []int {
	targets := make([]int, len(srcs))
	claimed := make([]bool, len(slides))
	for i, src := range srcs {
		targets[i] = -1
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		for k, s := range slides {
			if !claimed[k] && strings.TrimSpace(s.Src) == src {
				claimed[k] = true
				targets[i] = k
				break
			}
		}
	}
	return targets
}

func (e *Engine) position(id string) int {
	for i, v := range e.physical {
		if v == id {
			return i
		}
	}
	return -1
}

// normalize reduces n modulo the slide count; negative counts are no-ops.
func (e *Engine) normalize(n int) int {
	if n <= 0 || len(e.physical) < 2 {
		return 0
	}
	return n % len(e.physical)
}
