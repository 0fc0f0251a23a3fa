package canvas

import (
	"strings"
	"testing"

	"github.com/vovakirdan/memylon/internal/anim"
	"github.com/vovakirdan/memylon/internal/core"
)

func newTestCanvas() *Canvas {
	return New(core.NewScreen(60, 16), DefaultGeometry, NewLabelSheet([]string{"Go", "Python"}))
}

// span returns the runes of row y in columns [x0, x1).
func span(s *core.Screen, y, x0, x1 int) string {
	return string([]rune(s.Row(y))[x0:x1])
}

func TestGeometry(t *testing.T) {
	g := DefaultGeometry
	if got := g.Cols(anim.CardW); got != 10 {
		t.Errorf("Cols(card) = %d, want 10", got)
	}
	if got := g.Rows(anim.CardH); got != 4 {
		t.Errorf("Rows(card) = %d, want 4", got)
	}
	x, y := g.Pixel(0, 0)
	if x != 3 || y != 7 {
		t.Errorf("Pixel(0,0) = (%d,%d), want (3,7)", x, y)
	}
	x, y = g.Pixel(10, 4)
	if x/anim.CardW != 1 || y/anim.CardH != 1 {
		t.Errorf("Pixel(10,4) = (%d,%d), want inside card (1,1)", x, y)
	}
}

func TestDrawCardFace(t *testing.T) {
	c := newTestCanvas()
	anim.DrawCard(c, 1, 0, 0, 1, 1)
	s := c.Screen()

	corners := []struct {
		x, y int
		want rune
	}{
		{0, 0, '╭'},
		{9, 0, '╮'},
		{0, 3, '╰'},
		{9, 3, '╯'},
	}
	for _, tc := range corners {
		if got := s.Get(tc.x, tc.y); got != tc.want {
			t.Errorf("Get(%d,%d) = %q, want %q", tc.x, tc.y, got, tc.want)
		}
	}
	if got := span(s, 1, 0, 10); got != "│   Go   │" {
		t.Errorf("Row(1) = %q", got)
	}
	if s.GetCell(4, 1).Style.Hex == "" {
		t.Error("face label should carry a hex colour")
	}
	if got := s.Get(10, 0); got != ' ' {
		t.Errorf("card leaked into next column: %q", got)
	}
}

func TestDrawCardBack(t *testing.T) {
	c := newTestCanvas()
	anim.DrawCard(c, -1, anim.CardW, anim.CardH, 1, 1)
	s := c.Screen()

	if got := s.Get(10, 4); got != '╭' {
		t.Errorf("Get(10,4) = %q, want '╭'", got)
	}
	if got := s.Get(11, 5); got != '░' {
		t.Errorf("back interior = %q, want '░'", got)
	}
}

func TestDrawCardSquashed(t *testing.T) {
	c := newTestCanvas()
	anim.DrawCard(c, 1, 0, 0, 0, 1)
	if got := span(c.Screen(), 0, 0, 10); got != "          " {
		t.Errorf("zero width card drew %q", got)
	}

	anim.DrawCard(c, 1, 0, 0, 0.05, 1)
	if got := c.Screen().Get(5, 0); got != sliverRune {
		t.Errorf("thin card = %q, want sliver", got)
	}
}

func TestDrawCardAlpha(t *testing.T) {
	tests := []struct {
		name      string
		alpha     float64
		wantRune  rune
		wantFaint bool
	}{
		{"opaque", 1, '╭', false},
		{"faint", 0.5, '╭', true},
		{"shade", 0.2, shadeRune, true},
		{"invisible", 0.01, ' ', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas()
			c.WithAlpha(tt.alpha, func() {
				anim.DrawCard(c, 1, 0, 0, 1, 1)
			})
			cell := c.Screen().GetCell(0, 0)
			if cell.Rune != tt.wantRune {
				t.Errorf("rune = %q, want %q", cell.Rune, tt.wantRune)
			}
			if cell.Style.Faint != tt.wantFaint {
				t.Errorf("faint = %v, want %v", cell.Style.Faint, tt.wantFaint)
			}
		})
	}
}

func TestWithAlphaRestores(t *testing.T) {
	c := newTestCanvas()
	c.WithAlpha(0.01, func() {})
	anim.DrawCard(c, 1, 0, 0, 1, 1)
	if got := c.Screen().Get(0, 0); got != '╭' {
		t.Errorf("alpha not restored, got %q", got)
	}
}

func TestDrawText(t *testing.T) {
	style := anim.TextStyle{Size: 10, Bold: true, Color: "#2222AA"}

	c := newTestCanvas()
	c.DrawText("Go", 192, 150, style)
	s := c.Screen()
	if got := span(s, 10, 29, 31); got != "Go" {
		t.Errorf("caption = %q, want %q", got, "Go")
	}
	cell := s.GetCell(29, 10)
	if cell.Style.Hex != "#2222AA" || !cell.Style.Bold {
		t.Errorf("caption style = %+v", cell.Style)
	}
}

func TestDrawTextSpacing(t *testing.T) {
	c := newTestCanvas()
	anim.DrawCard(c, 1, 3*anim.CardW, 2*anim.CardH, 1, 1)
	c.DrawText("Go", 192, 150, anim.TextStyle{Size: 80})
	s := c.Screen()

	if got := s.Get(28, 10); got != 'G' {
		t.Errorf("Get(28,10) = %q, want 'G'", got)
	}
	if got := s.Get(31, 10); got != 'o' {
		t.Errorf("Get(31,10) = %q, want 'o'", got)
	}
	// The gap between letters keeps what was underneath.
	if got := s.Get(30, 10); got != '│' {
		t.Errorf("Get(30,10) = %q, want card border", got)
	}
}

func TestDrawTextHidden(t *testing.T) {
	tests := []struct {
		name  string
		size  float64
		alpha float64
	}{
		{"tiny", 4, 1},
		{"transparent", 30, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas()
			c.WithAlpha(tt.alpha, func() {
				c.DrawText("Go", 192, 150, anim.TextStyle{Size: tt.size})
			})
			if got := c.Screen().Row(10); got != strings.Repeat(" ", 60) {
				t.Errorf("Row(10) = %q, want blank", got)
			}
		})
	}
}

func TestDrawBackground(t *testing.T) {
	c := newTestCanvas()
	anim.DrawCard(c, 1, 0, 0, 1, 1)
	c.DrawBackground()
	s := c.Screen()
	if got := s.Get(0, 0); got != feltRune {
		t.Errorf("Get(0,0) = %q, want felt", got)
	}
	if got := s.Get(1, 0); got != ' ' {
		t.Errorf("Get(1,0) = %q, want blank", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		label string
		width int
		rows  int
		want  []string
	}{
		{"Go", 8, 2, []string{"Go"}},
		{"Mathematica", 8, 2, []string{"Mathemat", "ica"}},
		{"abcdefghijklmnopqrst", 8, 2, []string{"abcdefgh", "ijklmno…"}},
		{"PowerShell", 4, 1, []string{"Pow…"}},
		{"", 8, 2, nil},
	}

	for _, tt := range tests {
		got := wrap([]rune(tt.label), tt.width, tt.rows)
		if len(got) != len(tt.want) {
			t.Errorf("wrap(%q) = %d lines, want %d", tt.label, len(got), len(tt.want))
			continue
		}
		for i := range got {
			if string(got[i]) != tt.want[i] {
				t.Errorf("wrap(%q)[%d] = %q, want %q", tt.label, i, string(got[i]), tt.want[i])
			}
		}
	}
}

func TestLabelSheet(t *testing.T) {
	sheet := NewLabelSheet([]string{"Go", "Python"})
	if g := sheet.Glyph(0); g.Label != "" || g.Fill != '░' {
		t.Errorf("Glyph(0) = %+v, want back", g)
	}
	if g := sheet.Glyph(2); g.Label != "Python" {
		t.Errorf("Glyph(2).Label = %q, want Python", g.Label)
	}
	if g := sheet.Glyph(3); g.Label != "" {
		t.Errorf("unknown glyph should fall back to the back, got %+v", g)
	}
}
