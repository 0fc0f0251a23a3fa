package canvas

import "github.com/vovakirdan/memylon/internal/core"

// Glyph is the terminal look of one sprite sheet entry.
type Glyph struct {
	Label string
	Style core.Style
	Fill  rune // Interior fill, space when zero
}

// Sheet resolves sprite sheet glyph ids. Glyph 0 is the card back.
type Sheet interface {
	Glyph(id int) Glyph
}

var backGlyph = Glyph{
	Style: core.Style{Color: core.ColorBlue},
	Fill:  '░',
}

var palette = []string{
	"#E06C75", "#98C379", "#E5C07B", "#61AFEF",
	"#C678DD", "#56B6C2", "#D19A66", "#ABB2BF",
}

// LabelSheet is a sheet whose faces are text labels, face n using labels[n-1].
type LabelSheet struct {
	labels []string
}

// NewLabelSheet creates a sheet from face labels.
func NewLabelSheet(labels []string) *LabelSheet {
	return &LabelSheet{labels: labels}
}

// Glyph returns the back for id 0 and unknown ids.
func (s *LabelSheet) Glyph(id int) Glyph {
	if id <= 0 || id > len(s.labels) {
		return backGlyph
	}
	return Glyph{
		Label: s.labels[id-1],
		Style: core.Style{Hex: palette[(id-1)%len(palette)], Bold: true},
	}
}
