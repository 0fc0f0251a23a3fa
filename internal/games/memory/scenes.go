package memory

import (
	"time"

	"github.com/vovakirdan/memylon/internal/anim"
)

// startIntro flashes every card face up, column by column, and enables
// clicks once the slowest card is face down again.
func (g *Game) startIntro() {
	t := g.cfg.Timing

	for i := 0; i < g.board.Len(); i++ {
		c := g.board.Card(i)
		c.Anim = anim.New()
		if delay := t.Stagger() * time.Duration(i%Cols+1); delay > 0 {
			c.Anim.Add(anim.Pose{Face: c.ID}, delay)
		}
		c.Anim.
			Add(anim.Flip{Face: c.ID}, t.Flip()).
			Add(anim.Pose{Face: -c.ID}, t.Flash()).
			Add(anim.Flip{Face: -c.ID}, t.Flip())
	}

	g.ambient = []*anim.Sequence{
		anim.New().
			Add(anim.Exec{Fn: g.enable}, g.introDuration()).
			Add(anim.Wait{}, 0),
	}
}

// introDuration is the length of the slowest intro sequence.
func (g *Game) introDuration() time.Duration {
	t := g.cfg.Timing
	return t.Stagger()*Cols + 2*t.Flip() + t.Flash()
}

func (g *Game) enable() {
	g.interactive = true
	g.log.Debug("ready", "tick", g.tick)
}

// win replaces the ambient animations with the finale script and
// schedules the link reveal after it.
func (g *Game) win(face int) {
	g.winner = face
	g.wonAt = g.elapsed
	g.interactive = false
	name := g.deck.Card(face).Name

	finale := g.cfg.Finale
	g.ambient = make([]*anim.Sequence, 0, len(finale.Captions)+1)
	for _, c := range finale.Captions {
		seq := anim.New()
		if c.Delay() > 0 {
			seq.Add(anim.Wait{}, c.Delay())
		}
		seq.Add(anim.Text{Params: c.Params(name), Defaults: &g.cfg.Caption}, c.Duration())
		g.ambient = append(g.ambient, seq)
	}
	g.ambient = append(g.ambient, anim.New().
		Add(anim.Exec{Fn: g.reveal}, finale.Reveal()).
		Add(anim.Wait{}, 0))

	g.log.Debug("won", "face", face, "name", name, "misses", g.misses, "elapsed", g.wonAt)
}

func (g *Game) reveal() {
	g.link = g.deck.Card(g.winner).Link
	g.gameOver = true
	g.log.Debug("link revealed", "link", g.link)
}
