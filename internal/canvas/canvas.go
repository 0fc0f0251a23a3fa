// Package canvas draws animation frames onto a terminal screen buffer.
//
// It implements anim.Canvas by mapping the board's pixel space to terminal
// cells. Sprites become framed cards, global alpha becomes terminal shading
// and font sizes become letter spacing.
package canvas

import (
	"math"

	"github.com/vovakirdan/memylon/internal/anim"
	"github.com/vovakirdan/memylon/internal/core"
)

// Shading thresholds for global alpha.
const (
	alphaInvisible = 0.05 // Below this nothing is drawn
	alphaShade     = 0.3  // Below this sprites collapse to a shade pattern
	alphaFaint     = 0.7  // Below this cells use the faint attribute

	minTextSize  = 5.0  // Smaller captions are not drawn
	spacingStep  = 40.0 // Font pixels per extra space between letters
	maxSpacing   = 3
	shadeRune    = '░'
	sliverRune   = '┃'
	feltRune     = '·'
	feltInterval = 4
)

// Geometry maps pixel space to terminal cells.
type Geometry struct {
	ColWidth  float64 // Pixels per terminal column
	RowHeight float64 // Pixels per terminal row
}

// DefaultGeometry turns a 64x60 card into 10x4 cells.
var DefaultGeometry = Geometry{ColWidth: 6.4, RowHeight: 15}

// Cols returns how many columns a pixel width covers.
func (g Geometry) Cols(px float64) int {
	return int(math.Round(px / g.ColWidth))
}

// Rows returns how many rows a pixel height covers.
func (g Geometry) Rows(px float64) int {
	return int(math.Round(px / g.RowHeight))
}

// Pixel returns the pixel at the center of a terminal cell.
func (g Geometry) Pixel(col, row int) (x, y int) {
	return int((float64(col) + 0.5) * g.ColWidth), int((float64(row) + 0.5) * g.RowHeight)
}

// Canvas is an anim.Canvas backed by a core.Screen.
type Canvas struct {
	screen *core.Screen
	geo    Geometry
	sheet  Sheet
	alpha  float64
}

var _ anim.Canvas = (*Canvas)(nil)

// New creates a canvas drawing onto screen.
func New(screen *core.Screen, geo Geometry, sheet Sheet) *Canvas {
	return &Canvas{
		screen: screen,
		geo:    geo,
		sheet:  sheet,
		alpha:  1,
	}
}

// Screen returns the underlying buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// DrawBackground clears the buffer and draws the table felt.
func (c *Canvas) DrawBackground() {
	c.screen.Clear()
	felt := core.Style{Color: core.ColorGray, Faint: true}
	for y := 0; y < c.screen.Height(); y += 2 {
		for x := 0; x < c.screen.Width(); x += feltInterval {
			c.screen.SetCell(x, y, core.Cell{Rune: feltRune, Style: felt})
		}
	}
}

// WithAlpha draws with the given opacity, then restores full opacity.
func (c *Canvas) WithAlpha(alpha float64, draw func()) {
	c.alpha = alpha
	defer func() { c.alpha = 1 }()
	draw()
}

// DrawSprite draws the glyph at src scaled into dst.
func (c *Canvas) DrawSprite(src, dst anim.Rect) {
	if c.alpha < alphaInvisible {
		return
	}
	glyph := c.sheet.Glyph(anim.GlyphAt(src))

	x0 := c.geo.Cols(dst.X)
	x1 := c.geo.Cols(dst.X + dst.W)
	y0 := c.geo.Rows(dst.Y)
	y1 := c.geo.Rows(dst.Y + dst.H)
	w, h := x1-x0, y1-y0
	if h <= 0 {
		return
	}

	style := c.shade(glyph.Style)

	switch {
	case c.alpha < alphaShade:
		c.fill(x0, y0, core.Max(w, 1), h, shadeRune, style)
	case w <= 0:
		if dst.W > 0 {
			c.fill(c.geo.Cols(dst.X+dst.W/2), y0, 1, h, sliverRune, style)
		}
	case w < 3 || h < 2:
		c.fill(x0, y0, w, h, sliverRune, style)
	default:
		c.frame(x0, y0, w, h, glyph, style)
	}
}

// DrawText draws a caption centered on (x, y).
func (c *Canvas) DrawText(text string, x, y float64, st anim.TextStyle) {
	if c.alpha < alphaInvisible || st.Size < minTextSize {
		return
	}

	spacing := core.Clamp(int(math.Round(st.Size/spacingStep)), 0, maxSpacing)
	runes := spread([]rune(text), spacing)

	row := int(math.Floor(y / c.geo.RowHeight))
	col := int(math.Round(x/c.geo.ColWidth)) - len(runes)/2

	style := c.shade(core.Style{Hex: st.Color, Bold: st.Bold})
	for i, r := range runes {
		if r == ' ' {
			continue
		}
		c.screen.SetCell(col+i, row, core.Cell{Rune: r, Style: style})
	}
}

func (c *Canvas) shade(st core.Style) core.Style {
	if c.alpha < alphaFaint {
		return st.WithFaint()
	}
	return st
}

func (c *Canvas) fill(x, y, w, h int, r rune, st core.Style) {
	c.screen.FillRect(core.NewRect(x, y, w, h), core.Cell{Rune: r, Style: st})
}

// frame draws a bordered card with the glyph label centered inside.
func (c *Canvas) frame(x, y, w, h int, g Glyph, st core.Style) {
	right, bottom := x+w-1, y+h-1
	set := func(col, row int, r rune) {
		c.screen.SetCell(col, row, core.Cell{Rune: r, Style: st})
	}

	set(x, y, '╭')
	set(right, y, '╮')
	set(x, bottom, '╰')
	set(right, bottom, '╯')
	for col := x + 1; col < right; col++ {
		set(col, y, '─')
		set(col, bottom, '─')
	}
	for row := y + 1; row < bottom; row++ {
		set(x, row, '│')
		set(right, row, '│')
	}

	innerW, innerH := w-2, h-2
	fill := g.Fill
	if fill == 0 {
		fill = ' '
	}
	c.fill(x+1, y+1, innerW, innerH, fill, st)

	lines := wrap([]rune(g.Label), innerW, innerH)
	top := y + 1 + (innerH-len(lines))/2
	for i, line := range lines {
		left := x + 1 + (innerW-len(line))/2
		for j, r := range line {
			set(left+j, top+i, r)
		}
	}
}

// wrap splits a label into at most rows lines of width runes.
// An overflowing label ends with an ellipsis.
func wrap(label []rune, width, rows int) [][]rune {
	if width <= 0 || rows <= 0 || len(label) == 0 {
		return nil
	}
	var lines [][]rune
	for len(label) > 0 && len(lines) < rows {
		n := core.Min(width, len(label))
		lines = append(lines, label[:n])
		label = label[n:]
	}
	if len(label) > 0 {
		last := append([]rune(nil), lines[len(lines)-1]...)
		last[len(last)-1] = '…'
		lines[len(lines)-1] = last
	}
	return lines
}

// spread inserts n spaces between letters.
func spread(text []rune, n int) []rune {
	if n == 0 || len(text) < 2 {
		return text
	}
	out := make([]rune, 0, len(text)*(n+1))
	for i, r := range text {
		if i > 0 {
			for k := 0; k < n; k++ {
				out = append(out, ' ')
			}
		}
		out = append(out, r)
	}
	return out
}
