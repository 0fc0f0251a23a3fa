package memory

import (
	"fmt"

	"github.com/vovakirdan/memylon/internal/core"
)

// HUD rows around the board.
const (
	hudTop    = 2
	hudBottom = 3
)

var (
	titleStyle  = core.Style{Hex: "#D91122", Bold: true}
	missStyle   = core.Style{Color: core.ColorYellow}
	hintStyle   = core.Style{Color: core.ColorGray}
	winnerStyle = core.Style{Hex: "#D91122", Bold: true}
	linkStyle   = core.Style{Color: core.ColorBrightBlue}
)

// layout centers the board and its HUD on a w x h screen.
func (g *Game) layout(w, h int) {
	bw, bh := g.fb.Width(), g.fb.Height()
	g.tooSmall = w < bw || h < bh+hudTop+hudBottom
	g.area = core.NewRect((w-bw)/2, (h-bh-hudTop-hudBottom)/2+hudTop, bw, bh)
}

// Render draws the board canvas and the HUD.
func (g *Game) Render(dst *core.Screen) {
	g.layout(dst.Width(), dst.Height())
	bw, bh := g.fb.Width(), g.fb.Height()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", bw, bh+hudTop+hudBottom))
		return
	}

	x, y := g.area.X, g.area.Y

	dst.DrawStyledText(x, y-hudTop, "MEMYLON", titleStyle)
	misses := fmt.Sprintf("misses: %d", g.misses)
	dst.DrawStyledText(x+bw-len(misses), y-hudTop, misses, missStyle)

	dst.Blit(g.fb, x, y)

	st := g.State()
	below := y + bh + 1
	switch {
	case st.GameOver:
		dst.DrawStyledText(x, below, "winner: "+st.Winner, winnerStyle)
		dst.DrawStyledText(x, below+1, st.Link, linkStyle)
	case st.Won:
		dst.DrawStyledText(x, below, fmt.Sprintf("all %d pairs found", g.pairs), hintStyle)
	case !st.Ready:
		dst.DrawStyledText(x, below, "memorise the board...", hintStyle)
	default:
		dst.DrawStyledText(x, below, fmt.Sprintf("pairs: %d/%d  click two cards", g.pairs, Size/2), hintStyle)
	}
	if !st.GameOver {
		dst.DrawStyledText(x, below+1, "r new game  q quit", hintStyle)
	}
}
