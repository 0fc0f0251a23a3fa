package anim

import "math"

// Pose draws the card statically at full scale.
// Face is the identity captured when the step was scheduled, not the card's
// live identity.
type Pose struct {
	Face int
}

func (p Pose) Apply(_ float64, ctx Context) {
	DrawCard(ctx.Canvas, p.Face, ctx.X, ctx.Y, 1, 1)
}

// Flip squashes the card horizontally by cos(πt). The first half shows Face,
// the second half shows the opposite side.
type Flip struct {
	Face int
}

func (f Flip) Apply(t float64, ctx Context) {
	scale := math.Cos(math.Pi * t)
	face := f.Face
	if scale <= 0 {
		face = -face
	}
	DrawCard(ctx.Canvas, face, ctx.X, ctx.Y, math.Abs(scale), 1)
}

// Hide fades the card out; at t >= 1 nothing is drawn.
type Hide struct {
	Face int
}

func (h Hide) Apply(t float64, ctx Context) {
	if t >= 1 {
		return
	}
	ctx.Canvas.WithAlpha(1-t, func() {
		DrawCard(ctx.Canvas, h.Face, ctx.X, ctx.Y, 1, 1)
	})
}

// Text draws a flying caption interpolated between its from/to values.
type Text struct {
	Params   TextParams
	Defaults *TextDefaults // Nil means DefaultText
}

func (x Text) Apply(t float64, ctx Context) {
	d := DefaultText
	if x.Defaults != nil {
		d = *x.Defaults
	}
	f := x.Params.Resolve(d)

	size := Lerp(f.SizeFrom, f.SizeTo, t)
	px := Lerp(f.XFrom, f.XTo, t)
	py := Lerp(f.YFrom, f.YTo, t)
	alpha := Lerp(f.AlphaFrom, f.AlphaTo, t)

	style := TextStyle{Size: size, Font: f.Font, Bold: f.Bold, Color: f.Color}
	ctx.Canvas.WithAlpha(alpha, func() {
		ctx.Canvas.DrawText(f.Text, px, py, style)
	})
}

// Exec calls Fn whenever it is applied at exactly t == 1.
//
// A sequence parked on a terminal Exec step calls Fn on every tick; follow it
// with a Wait step when Fn must run once.
type Exec struct {
	Fn func()
}

func (e Exec) Apply(t float64, _ Context) {
	if t == 1 && e.Fn != nil {
		e.Fn()
	}
}

// Wait does nothing. It is used as a timed delay or an endless filler.
type Wait struct{}

func (Wait) Apply(float64, Context) {}
