package anim

// Card sprite sheet geometry in pixels. Glyph 0 is the card back and glyph n
// is face value n, laid out row-major SheetColumns glyphs per row.
const (
	CardW        = 64
	CardH        = 60
	SheetColumns = 9
)

// Rect is an area in pixel space.
type Rect struct {
	X, Y, W, H float64
}

// TextStyle describes how DrawText renders a caption.
type TextStyle struct {
	Size  float64 // Font size in pixels
	Font  string
	Bold  bool
	Color string // "#RRGGBB"
}

// Canvas is the drawing surface behaviors render to.
//
// DrawText centers the text horizontally on x and vertically on y.
// WithAlpha applies a global opacity to everything drawn inside draw and
// restores full opacity afterwards.
type Canvas interface {
	DrawBackground()
	DrawSprite(src, dst Rect)
	DrawText(text string, x, y float64, style TextStyle)
	WithAlpha(alpha float64, draw func())
}

// GlyphRect returns the sprite sheet region of a glyph.
func GlyphRect(glyph int) Rect {
	return Rect{
		X: float64(glyph%SheetColumns) * CardW,
		Y: float64(glyph/SheetColumns) * CardH,
		W: CardW,
		H: CardH,
	}
}

// GlyphAt is the inverse of GlyphRect.
func GlyphAt(src Rect) int {
	return int(src.X)/CardW + SheetColumns*(int(src.Y)/CardH)
}

// DrawCard draws a card at (x, y) scaled around its center.
// Positive identities show their face, anything else shows the back.
func DrawCard(c Canvas, identity int, x, y, scaleX, scaleY float64) {
	glyph := 0
	if identity > 0 {
		glyph = identity
	}
	dst := Rect{
		X: x + CardW*(1-scaleX)/2,
		Y: y + CardH*(1-scaleY)/2,
		W: CardW * scaleX,
		H: CardH * scaleY,
	}
	c.DrawSprite(GlyphRect(glyph), dst)
}
