package anim

// TextParams are the per-caption parameters of a Text step.
// Unset "from" values take the defaults; unset "to" values take the matching
// "from" value, so a caption with only "from" values is static.
type TextParams struct {
	Text      string   `yaml:"text"`
	SizeFrom  *float64 `yaml:"size_from,omitempty"`
	SizeTo    *float64 `yaml:"size_to,omitempty"`
	XFrom     *float64 `yaml:"x_from,omitempty"`
	XTo       *float64 `yaml:"x_to,omitempty"`
	YFrom     *float64 `yaml:"y_from,omitempty"`
	YTo       *float64 `yaml:"y_to,omitempty"`
	AlphaFrom *float64 `yaml:"alpha_from,omitempty"`
	AlphaTo   *float64 `yaml:"alpha_to,omitempty"`
	Font      string   `yaml:"font,omitempty"`
	Bold      *bool    `yaml:"bold,omitempty"`
	Color     string   `yaml:"color,omitempty"`
}

// TextDefaults fill the unset "from" values and the style of a caption.
type TextDefaults struct {
	Size  float64 `yaml:"size"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Alpha float64 `yaml:"alpha"`
	Font  string  `yaml:"font"`
	Bold  bool    `yaml:"bold"`
	Color string  `yaml:"color"`
}

// DefaultText are the caption defaults of the board canvas.
var DefaultText = TextDefaults{
	Size:  10,
	X:     182,
	Y:     150,
	Alpha: 1,
	Font:  "Arial",
	Bold:  true,
	Color: "#2222AA",
}

// ResolvedText is a TextParams with every value filled in.
type ResolvedText struct {
	Text               string
	SizeFrom, SizeTo   float64
	XFrom, XTo         float64
	YFrom, YTo         float64
	AlphaFrom, AlphaTo float64
	Font               string
	Bold               bool
	Color              string
}

// Resolve applies the default-fill rule without modifying p.
func (p TextParams) Resolve(d TextDefaults) ResolvedText {
	r := ResolvedText{
		Text:      p.Text,
		SizeFrom:  or(p.SizeFrom, d.Size),
		XFrom:     or(p.XFrom, d.X),
		YFrom:     or(p.YFrom, d.Y),
		AlphaFrom: or(p.AlphaFrom, d.Alpha),
		Font:      p.Font,
		Bold:      d.Bold,
		Color:     p.Color,
	}
	r.SizeTo = or(p.SizeTo, r.SizeFrom)
	r.XTo = or(p.XTo, r.XFrom)
	r.YTo = or(p.YTo, r.YFrom)
	r.AlphaTo = or(p.AlphaTo, r.AlphaFrom)

	if r.Font == "" {
		r.Font = d.Font
	}
	if r.Color == "" {
		r.Color = d.Color
	}
	if p.Bold != nil {
		r.Bold = *p.Bold
	}
	return r
}

// Val returns a pointer to v, for filling optional TextParams fields.
func Val(v float64) *float64 {
	return &v
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func or(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
