package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"reportmap/internal/domain"
)

func TestCanvas_Box(t *testing.T) {
	c := NewCanvas(6, 3, 0, 0)
	c.Box(domain.Rect{W: 6, H: 3}, lipgloss.NewStyle())

	want := "╭────╮\n│    │\n╰────╯"
	if got := c.Plain(); got != want {
		t.Errorf("Plain() =\n%s\nwant\n%s", got, want)
	}
}

func TestCanvas_WideRunes(t *testing.T) {
	tests := []struct {
		name  string
		width int
		draw  func(c *Canvas)
		want  string
	}{
		{
			name:  "two cells per rune",
			width: 5,
			draw:  func(c *Canvas) { c.Text(0, 0, "元帳", lipgloss.NewStyle()) },
			want:  "元帳 ",
		},
		{
			name:  "no room for the second half",
			width: 3,
			draw:  func(c *Canvas) { c.Text(0, 0, "元帳", lipgloss.NewStyle()) },
			want:  "元 ",
		},
		{
			name:  "overwriting the tail clears the head",
			width: 3,
			draw: func(c *Canvas) {
				c.Text(0, 0, "元", lipgloss.NewStyle())
				c.Text(1, 0, "x", lipgloss.NewStyle())
			},
			want: " x ",
		},
		{
			name:  "centered label",
			width: 10,
			draw:  func(c *Canvas) { c.TextCentered(5, 0, "元帳", 8, lipgloss.NewStyle()) },
			want:  "   元帳   ",
		},
		{
			name:  "truncated label",
			width: 6,
			draw:  func(c *Canvas) { c.TextCentered(3, 0, "合計残高試算表", 5, lipgloss.NewStyle()) },
			want:  " 合計…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(tt.width, 1, 0, 0)
			tt.draw(c)
			if got := c.Plain(); got != tt.want {
				t.Errorf("Plain() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCanvas_Polyline(t *testing.T) {
	c := NewCanvas(8, 5, 0, 0)
	c.Polyline([]domain.Point{{X: 0, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 6, Y: 3}}, false, true, lipgloss.NewStyle())

	want := strings.Join([]string{
		"        ",
		"───╮    ",
		"   │    ",
		"   ╰─▶  ",
		"        ",
	}, "\n")
	if got := c.Plain(); got != want {
		t.Errorf("Plain() =\n%s\nwant\n%s", got, want)
	}
}

func TestCanvas_DashedVerticalArrow(t *testing.T) {
	c := NewCanvas(1, 4, 0, 0)
	c.Polyline([]domain.Point{{X: 0, Y: 0}, {X: 0, Y: 3}}, true, true, lipgloss.NewStyle())

	if got, want := c.Plain(), "╎\n╎\n▼\n "; got != want {
		t.Errorf("Plain() = %q, want %q", got, want)
	}
}

func TestCanvas_CropsToOrigin(t *testing.T) {
	c := NewCanvas(3, 1, 10, 0)
	c.Text(9, 0, "abcd", lipgloss.NewStyle())

	if got := c.Plain(); got != "bcd" {
		t.Errorf("Plain() = %q, want %q", got, "bcd")
	}
	if v := c.Viewport(); v != (domain.Rect{X: 10, W: 3, H: 1}) {
		t.Errorf("Viewport() = %+v", v)
	}
}

func TestGridPath_SplitsDiagonals(t *testing.T) {
	got := gridPath([]domain.Point{{X: 0, Y: 0}, {X: 0.2, Y: 0}, {X: 3, Y: 2}})
	want := []gridPoint{{0, 0}, {3, 0}, {3, 2}}

	if len(got) != len(want) {
		t.Fatalf("gridPath() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}
