package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlace_SidePriority(t *testing.T) {
	tests := []struct {
		name      string
		container Rect
		target    Rect
		size      Size
		want      Placement
	}{
		{
			name:      "right fits",
			container: Rect{W: 100, H: 40},
			target:    Rect{X: 10, Y: 10, W: 10, H: 4},
			size:      Size{W: 20, H: 6},
			want:      Placement{Side: SideRight, Left: 22, Top: 9},
		},
		{
			name:      "left when right overflows",
			container: Rect{W: 100, H: 40},
			target:    Rect{X: 80, Y: 10, W: 15, H: 4},
			size:      Size{W: 20, H: 6},
			want:      Placement{Side: SideLeft, Left: 58, Top: 9},
		},
		{
			name:      "top when target is wide",
			container: Rect{W: 40, H: 40},
			target:    Rect{X: 5, Y: 20, W: 30, H: 4},
			size:      Size{W: 10, H: 4},
			want:      Placement{Side: SideTop, Left: 15, Top: 14},
		},
		{
			name:      "bottom when nothing above",
			container: Rect{W: 40, H: 40},
			target:    Rect{X: 5, Y: 2, W: 30, H: 4},
			size:      Size{W: 10, H: 4},
			want:      Placement{Side: SideBottom, Left: 15, Top: 8},
		},
		{
			name:      "relative to container origin",
			container: Rect{X: 10, Y: 5, W: 100, H: 40},
			target:    Rect{X: 20, Y: 15, W: 10, H: 4},
			size:      Size{W: 20, H: 6},
			want:      Placement{Side: SideRight, Left: 22, Top: 9},
		},
		{
			name:      "fallback left clamped",
			container: Rect{W: 30, H: 10},
			target:    Rect{W: 30, H: 10},
			size:      Size{W: 10, H: 4},
			want:      Placement{Side: SideLeft, Left: 1, Top: 3},
		},
		{
			name:      "larger than container pins to origin",
			container: Rect{W: 30, H: 10},
			target:    Rect{X: 5, Y: 2, W: 4, H: 2},
			size:      Size{W: 50, H: 20},
			want:      Placement{Side: SideLeft, Left: 0, Top: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Place(tt.container, tt.target, tt.size)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlace_Defers(t *testing.T) {
	tests := []struct {
		name      string
		container Rect
		target    Rect
		size      Size
	}{
		{"zero container", Rect{}, Rect{W: 1, H: 1}, Size{W: 1, H: 1}},
		{"nan target", Rect{W: 10, H: 10}, Rect{X: math.NaN(), W: 1, H: 1}, Size{W: 1, H: 1}},
		{"inf size", Rect{W: 10, H: 10}, Rect{W: 1, H: 1}, Size{W: math.Inf(1), H: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Place(tt.container, tt.target, tt.size)
			assert.False(t, ok)
		})
	}
}

func TestPlace_AlwaysContained(t *testing.T) {
	containers := []Rect{
		{W: 20, H: 8},
		{X: 3, Y: 7, W: 40, H: 12},
		{W: 134, H: 28},
	}

	for _, c := range containers {
		for tx := c.X; tx < c.Right(); tx += 3 {
			for ty := c.Y; ty < c.Bottom(); ty += 2 {
				target := Rect{X: tx, Y: ty, W: math.Min(6, c.Right()-tx), H: math.Min(2, c.Bottom()-ty)}
				for w := 1.0; w <= c.W; w += 5 {
					for h := 1.0; h <= c.H; h += 3 {
						size := Size{W: w, H: h}
						p, ok := Place(c, target, size)
						require.True(t, ok)

						box := p.Rect(size)
						inside := box.X >= 0 && box.Y >= 0 && box.Right() <= c.W && box.Bottom() <= c.H
						assert.True(t, inside, "container %+v target %+v size %+v placed at %+v", c, target, size, p)
					}
				}
			}
		}
	}
}
