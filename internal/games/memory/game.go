// Package memory implements memylon, a memory matching card game.
//
// The board is dealt face down, flashed face up once, and then played by
// clicking pairs of cards. Every visual change is an anim.Sequence attached
// to a card or to the ambient list, advanced once per tick and drawn onto an
// offscreen canvas that Render copies to the screen.
package memory

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/memylon/internal/anim"
	"github.com/vovakirdan/memylon/internal/canvas"
	"github.com/vovakirdan/memylon/internal/config"
	"github.com/vovakirdan/memylon/internal/core"
	"github.com/vovakirdan/memylon/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "memylon"

// Game implements the memory card game.
type Game struct {
	cfg  config.MemoryConfig
	deck config.Deck
	log  *log.Logger

	rc      core.RuntimeConfig
	rng     *rand.Rand
	tick    uint64
	elapsed time.Duration

	board       Board
	turn        *turn
	misses      int
	pairs       int
	interactive bool
	ambient     []*anim.Sequence

	winner   int    // Face value of the last pair, 0 until won
	wonAt    time.Duration
	link     string // Revealed winner link
	gameOver bool

	fb     *core.Screen
	canvas *canvas.Canvas

	// Board area on the last rendered screen
	area     core.Rect
	tooSmall bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for game events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// New creates a game from a validated configuration.
func New(cfg config.MemoryConfig, opts ...Option) *Game {
	geo := canvas.DefaultGeometry
	deck := cfg.Deck()
	fb := core.NewScreen(geo.Cols(Width), geo.Rows(Height))

	g := &Game{
		cfg:    cfg,
		deck:   deck,
		log:    log.New(io.Discard),
		fb:     fb,
		canvas: canvas.New(fb, geo, canvas.NewLabelSheet(deck.Names())),
		turn:   newTurn(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New(config.DefaultMemoryConfig())
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Memylon"
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.MemoryConfig {
	return g.cfg
}

// Reset deals a new board and starts the intro flash.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rc = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.elapsed = 0

	g.board.Deal(g.rng, g.deck.Len())
	g.turn = newTurn()
	g.misses = 0
	g.pairs = 0
	g.interactive = false

	g.winner = 0
	g.wonAt = 0
	g.link = ""
	g.gameOver = false

	g.layout(rc.ScreenW, rc.ScreenH)
	g.startIntro()

	g.log.Debug("reset", "seed", rc.Seed, "flash", g.cfg.Timing.Flash())
}

// restart deals a new board seeded from the current one.
func (g *Game) restart() {
	rc := g.rc
	rc.Seed = g.rng.Int63()
	g.Reset(rc)
}

// Step advances every animation by one frame and draws it.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.restart()
	}

	g.tick++
	dt := g.rc.Frame()
	g.elapsed += dt

	g.canvas.DrawBackground()
	for i := 0; i < g.board.Len(); i++ {
		c := g.board.Card(i)
		if c.Anim == nil {
			continue
		}
		c.Anim.Advance(dt, anim.Context{Canvas: g.canvas, X: c.X, Y: c.Y})
	}
	for _, a := range g.ambient {
		a.Advance(dt, anim.Context{Canvas: g.canvas})
	}

	return core.StepResult{State: g.State()}
}

// Click handles a click at board pixel (x, y).
func (g *Game) Click(x, y int) {
	g.Select(CellAt(x, y))
}

// ClickCell handles a click on screen cell (col, row) of the last rendered frame.
func (g *Game) ClickCell(col, row int) {
	if g.tooSmall || !g.area.Contains(col, row) {
		return
	}
	g.Click(canvas.DefaultGeometry.Pixel(col-g.area.X, row-g.area.Y))
}

// Select turns over card i. Clicks while the board is not interactive, on
// the waiting card, on removed cards or outside the board are ignored.
func (g *Game) Select(i int) {
	if !g.interactive || i < 0 || i >= g.board.Len() || i == g.turn.Selected() {
		return
	}
	card := g.board.Card(i)
	if card.Removed() {
		return
	}

	flip := g.cfg.Timing.Flip()

	if g.turn.Idle() {
		card.Anim = anim.New().Add(anim.Flip{Face: card.ID}, flip)
		card.ID = -card.ID
		if err := g.turn.Select(i); err != nil {
			g.log.Error("turn", "err", err)
		}
		g.log.Debug("select", "card", i, "face", card.ID)
		return
	}

	prev := g.board.Card(g.turn.Selected())
	if card.Face() == prev.Face() {
		g.match(prev, card)
	} else {
		g.mismatch(prev, card)
	}
	if err := g.turn.Resolve(); err != nil {
		g.log.Error("turn", "err", err)
	}
}

// match removes a pair and flies its name over the board.
func (g *Game) match(prev, card *Card) {
	t := g.cfg.Timing
	face := card.Face()

	prev.Anim = anim.New().
		Add(anim.Pose{Face: prev.ID}, t.Flip()).
		Add(anim.Hide{Face: prev.ID}, t.Hide())
	card.Anim = anim.New().
		Add(anim.Flip{Face: card.ID}, t.Flip()).
		Add(anim.Hide{Face: -card.ID}, t.Hide())

	name := g.deck.Card(face).Name
	caption := g.cfg.Match.Caption
	caption.Text = name
	g.ambient = []*anim.Sequence{
		anim.New().
			Add(anim.Text{Params: caption, Defaults: &g.cfg.Caption}, g.cfg.Match.Duration()).
			Add(anim.Wait{}, 0),
	}

	prev.ID = 0
	card.ID = 0
	g.pairs++
	g.log.Debug("match", "face", face, "name", name, "pairs", g.pairs)

	if g.board.Cleared() {
		g.win(face)
	}
}

// mismatch shows both cards briefly, then turns them back.
func (g *Game) mismatch(prev, card *Card) {
	t := g.cfg.Timing

	prev.Anim = anim.New().
		Add(anim.Pose{Face: prev.ID}, t.Flip()+t.Show()).
		Add(anim.Flip{Face: prev.ID}, t.Flip()).
		Add(anim.Pose{Face: -prev.ID}, 0)
	card.Anim = anim.New().
		Add(anim.Flip{Face: card.ID}, t.Flip()).
		Add(anim.Pose{Face: -card.ID}, t.Show()).
		Add(anim.Flip{Face: -card.ID}, t.Flip()).
		Add(anim.Pose{Face: card.ID}, 0)

	prev.ID = -prev.ID
	g.misses++
	g.log.Debug("miss", "first", prev.Face(), "second", card.Face(), "misses", g.misses)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Misses:   g.misses,
		Pairs:    g.pairs,
		Ready:    g.interactive,
		Won:      g.winner != 0,
		Link:     g.link,
		GameOver: g.gameOver,
		Elapsed:  g.elapsed,
	}
	if st.Won {
		st.Winner = g.deck.Card(g.winner).Name
		st.Elapsed = g.wonAt
	}
	return st
}

var _ registry.Clicker = (*Game)(nil)
