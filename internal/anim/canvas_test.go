package anim

// op is one recorded drawing call.
type op struct {
	kind  string // "bg", "sprite", "text"
	src   Rect
	dst   Rect
	text  string
	x, y  float64
	style TextStyle
	alpha float64
}

// recorder is a Canvas that records every call.
type recorder struct {
	ops   []op
	alpha float64
}

func newRecorder() *recorder {
	return &recorder{alpha: 1}
}

func (r *recorder) DrawBackground() {
	r.ops = append(r.ops, op{kind: "bg", alpha: r.alpha})
}

func (r *recorder) DrawSprite(src, dst Rect) {
	r.ops = append(r.ops, op{kind: "sprite", src: src, dst: dst, alpha: r.alpha})
}

func (r *recorder) DrawText(text string, x, y float64, style TextStyle) {
	r.ops = append(r.ops, op{kind: "text", text: text, x: x, y: y, style: style, alpha: r.alpha})
}

func (r *recorder) WithAlpha(alpha float64, draw func()) {
	r.alpha = alpha
	draw()
	r.alpha = 1
}

func (r *recorder) last() op {
	if len(r.ops) == 0 {
		return op{}
	}
	return r.ops[len(r.ops)-1]
}

func (r *recorder) reset() {
	r.ops = r.ops[:0]
}
