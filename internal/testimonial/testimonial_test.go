package testimonial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prxstudio/reel/internal/swipe"
)

func cards(n int) []Card {
	out := make([]Card, n)
	for i := range out {
		out[i] = Card{Quote: "q", Author: string(rune('a' + i))}
	}
	return out
}

func TestNew_NoCards(t *testing.T) {
	tr, err := New(nil, swipe.Params{})
	assert.Nil(t, tr)
	assert.ErrorIs(t, err, ErrNoCards)
}

func TestMeasure_VisibleCount(t *testing.T) {
	tests := []struct {
		name     string
		viewport float64
		card     float64
		gap      float64
		want     int
	}{
		{"three fit", 1000, 300, 24, 3},
		{"narrow", 200, 300, 24, 1},
		{"default gap", 648, 300, 0, 2},
		{"exact fit", 624, 300, 24, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := New(cards(6), swipe.Params{})
			require.NoError(t, err)
			tr.Measure(tt.viewport, tt.card, tt.gap)
			assert.Equal(t, tt.want, tr.Visible())
		})
	}
}

func TestNextPrev_ClampAtEnds(t *testing.T) {
	tr, _ := New(cards(5), swipe.Params{})
	tr.Measure(1000, 300, 24)

	assert.False(t, tr.CanPrev())
	tr.Prev()
	assert.Equal(t, 0, tr.Index())

	tr.Next()
	tr.Next()
	tr.Next()
	assert.Equal(t, 2, tr.Index())
	assert.False(t, tr.CanNext())
	assert.Len(t, tr.Window(), 3)
	assert.InDelta(t, 648.0, tr.Offset(), 1e-9)
}

func TestMeasure_ClampsIndexOnGrow(t *testing.T) {
	tr, _ := New(cards(4), swipe.Params{})
	tr.Measure(300, 300, 24)
	tr.Next()
	tr.Next()
	tr.Next()
	require.Equal(t, 3, tr.Index())

	tr.Measure(1000, 300, 24)
	assert.Equal(t, 1, tr.Index())
}

func TestDrag(t *testing.T) {
	tr, _ := New(cards(4), swipe.Params{})
	tr.Measure(500, 400, 24)

	tr.DragStart(300)
	assert.Zero(t, tr.DragMove(400), "cannot scroll before the first card")
	assert.Equal(t, swipe.Prev, tr.DragEnd())
	assert.Equal(t, 0, tr.Index())

	tr.DragStart(300)
	assert.InDelta(t, 125.0, tr.DragMove(0), 1e-9)
	assert.Equal(t, swipe.Next, tr.DragEnd())
	assert.Equal(t, 1, tr.Index())

	tr.DragStart(300)
	tr.DragMove(290)
	assert.Equal(t, swipe.Revert, tr.DragEnd())
	assert.Equal(t, 1, tr.Index())
}

func TestScroll_FollowsDrag(t *testing.T) {
	tr, _ := New(cards(4), swipe.Params{})
	tr.Measure(500, 400, 24)
	tr.Next()
	assert.InDelta(t, 424.0, tr.Scroll(), 1e-9)

	tr.DragStart(300)
	tr.DragMove(250)
	assert.InDelta(t, 474.0, tr.Scroll(), 1e-9)

	tr.DragCancel()
	assert.InDelta(t, 424.0, tr.Scroll(), 1e-9)
}
