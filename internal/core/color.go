package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Style describes how a single cell is drawn.
// Hex takes precedence over Color when set (e.g. "#2222AA").
type Style struct {
	Color Color
	Hex   string
	Bold  bool
	Faint bool
}

// Plain is the zero style: default colour, no attributes.
var Plain = Style{}

// WithFaint returns a copy of the style with the faint attribute set.
func (s Style) WithFaint() Style {
	s.Faint = true
	return s
}
