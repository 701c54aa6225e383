package swipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreshold_CapsAtMax(t *testing.T) {
	p := Params{}
	assert.InDelta(t, 60.0, p.Threshold(500), 1e-9)
	assert.InDelta(t, 60.0, p.Threshold(2000), 1e-9)
	assert.InDelta(t, 36.0, p.Threshold(300), 1e-9)
}

func TestGesture_RightDragPastThresholdIsPrev(t *testing.T) {
	g := New(Params{})
	g.Start(100, 500)
	g.Move(180)
	require.True(t, g.Active())
	assert.Equal(t, Prev, g.End())
	assert.False(t, g.Active())
}

func TestGesture_LeftDragPastThresholdIsNext(t *testing.T) {
	g := New(Params{})
	g.Start(300, 500)
	g.Move(200)
	assert.Equal(t, Next, g.End())
}

func TestGesture_ShortDragReverts(t *testing.T) {
	tests := []struct {
		name string
		to   float64
	}{
		{"right under threshold", 159},
		{"exactly threshold", 160},
		{"left under threshold", 41},
		{"no movement", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(Params{})
			g.Start(100, 500)
			g.Move(tt.to)
			assert.Equal(t, Revert, g.End())
		})
	}
}

func TestGesture_OverdragIsBounded(t *testing.T) {
	g := New(Params{})
	g.Start(0, 400)
	assert.InDelta(t, 100.0, g.Move(350), 1e-9)
	assert.InDelta(t, -100.0, g.Move(-999), 1e-9)
	assert.InDelta(t, 40.0, g.Move(40), 1e-9)
}

func TestGesture_CancelAndIdle(t *testing.T) {
	g := New(Params{})
	assert.Equal(t, Revert, g.End())
	assert.Zero(t, g.Move(50))

	g.Start(0, 500)
	g.Move(400)
	g.Cancel()
	assert.False(t, g.Active())
	assert.Zero(t, g.Overdrag())
	assert.Equal(t, Revert, g.End())
}
