package memory

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/memylon/internal/anim"
	"github.com/vovakirdan/memylon/internal/config"
	"github.com/vovakirdan/memylon/internal/core"
)

func newGame(seed int64) *Game {
	g := New(config.DefaultMemoryConfig())
	g.Reset(core.RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameTime: 50 * time.Millisecond,
		Seed:      seed,
	})
	return g
}

func run(g *Game, ticks int) {
	in := core.NewInputFrame()
	for i := 0; i < ticks; i++ {
		g.Step(in)
	}
}

// skipIntro ticks until the board accepts clicks.
func skipIntro(t *testing.T, g *Game) {
	t.Helper()
	in := core.NewInputFrame()
	for i := 0; i < 1000 && !g.interactive; i++ {
		g.Step(in)
	}
	if !g.interactive {
		t.Fatal("board never became interactive")
	}
}

// plant rearranges the dealt faces so that cards a and b are a pair of face.
func plant(g *Game, face, a, b int) {
	ids := g.board.IDs()

	dealt := false
	for _, id := range ids {
		if id == -face {
			dealt = true
		}
	}
	if !dealt {
		old := ids[a]
		for i := range ids {
			if ids[i] == old {
				ids[i] = -face
			}
		}
	}

	place := func(p, avoid int) {
		if ids[p] == -face {
			return
		}
		for q := range ids {
			if q != p && q != avoid && ids[q] == -face {
				ids[p], ids[q] = ids[q], ids[p]
				return
			}
		}
	}
	place(a, b)
	place(b, a)

	for i, id := range ids {
		g.board.Card(i).ID = id
	}
}

// other returns a card whose face differs from card i.
func other(g *Game, i int) int {
	for j := 0; j < g.board.Len(); j++ {
		if c := g.board.Card(j); !c.Removed() && c.Face() != g.board.Card(i).Face() {
			return j
		}
	}
	return -1
}

func TestDealPairs(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := newGame(seed)

		counts := make(map[int]int)
		for i := 0; i < g.board.Len(); i++ {
			c := g.board.Card(i)
			if c.ID >= 0 {
				t.Fatalf("seed %d: card %d dealt face up (%d)", seed, i, c.ID)
			}
			counts[c.Face()]++

			wantX := float64(i%Cols) * anim.CardW
			wantY := float64(i/Cols) * anim.CardH
			if c.X != wantX || c.Y != wantY {
				t.Errorf("seed %d: card %d at (%v,%v), want (%v,%v)", seed, i, c.X, c.Y, wantX, wantY)
			}
		}

		if len(counts) != Size/2 {
			t.Errorf("seed %d: %d distinct faces, want %d", seed, len(counts), Size/2)
		}
		for face, n := range counts {
			if n != 2 {
				t.Errorf("seed %d: face %d dealt %d times", seed, face, n)
			}
			if face < 1 || face > 53 {
				t.Errorf("seed %d: face %d outside deck", seed, face)
			}
		}
	}
}

func TestResetState(t *testing.T) {
	g := newGame(3)
	snap := g.Snapshot()

	if snap.Misses != 0 || snap.Pairs != 0 {
		t.Errorf("misses=%d pairs=%d after reset", snap.Misses, snap.Pairs)
	}
	if snap.Selected != noSelection || snap.Turn != stateIdle {
		t.Errorf("turn = %s/%d, want idle/-1", snap.Turn, snap.Selected)
	}
	if snap.Interactive {
		t.Error("board interactive before the intro flash ended")
	}
	if snap.Ambient != 1 {
		t.Errorf("ambient = %d, want the intro callback only", snap.Ambient)
	}
	if snap.Link != "" || snap.Winner != 0 {
		t.Error("winner state survived reset")
	}
}

func TestIntroEnablesClicks(t *testing.T) {
	g := newGame(1)

	// 6 columns * 80ms + 2 flips * 500ms + 6000ms flash = 7480ms, 150 ticks.
	if got := g.introDuration(); got != 7480*time.Millisecond {
		t.Fatalf("introDuration() = %v, want 7.48s", got)
	}

	g.Select(0)
	if g.board.Card(0).ID > 0 {
		t.Error("click accepted during the intro")
	}

	run(g, 149)
	if g.State().Ready {
		t.Fatal("ready after 149 ticks")
	}
	run(g, 1)
	if !g.State().Ready {
		t.Fatal("not ready after 150 ticks")
	}

	// The intro leaves every card face down on screen.
	for i := 0; i < g.board.Len(); i++ {
		a := g.board.Card(i).Anim
		if a.Index() != a.Len()-1 {
			t.Errorf("card %d intro at step %d of %d", i, a.Index(), a.Len())
		}
	}
	if got := g.fb.Get(1, 1); got != '░' {
		t.Errorf("card 0 shows %q, want its back", got)
	}
}

func TestFirstSelection(t *testing.T) {
	g := newGame(2)
	skipIntro(t, g)
	before := g.board.Card(0).ID

	g.Select(0)

	if got := g.board.Card(0).ID; got != -before {
		t.Errorf("ID = %d, want %d", got, -before)
	}
	if got := g.turn.Selected(); got != 0 {
		t.Errorf("Selected() = %d, want 0", got)
	}
	if got := g.turn.State(); got != stateSelected {
		t.Errorf("turn = %s, want %s", got, stateSelected)
	}
	steps := g.board.Card(0).Anim.Steps()
	if len(steps) != 1 || steps[0].Duration != 500*time.Millisecond {
		t.Fatalf("steps = %+v, want one 500ms flip", steps)
	}
	if f, ok := steps[0].Behavior.(anim.Flip); !ok || f.Face != before {
		t.Errorf("behavior = %#v, want Flip from the back", steps[0].Behavior)
	}
}

func TestMismatch(t *testing.T) {
	g := newGame(4)
	skipIntro(t, g)

	g.Select(0)
	j := other(g, 0)
	g.Select(j)

	if g.board.Card(0).ID >= 0 || g.board.Card(j).ID >= 0 {
		t.Errorf("IDs = %d, %d, want both face down", g.board.Card(0).ID, g.board.Card(j).ID)
	}
	if g.misses != 1 {
		t.Errorf("misses = %d, want 1", g.misses)
	}
	if g.turn.Selected() != noSelection || !g.turn.Idle() {
		t.Errorf("turn = %s/%d, want idle", g.turn.State(), g.turn.Selected())
	}

	prev := g.board.Card(0).Anim.Steps()
	wantPrev := []time.Duration{800 * time.Millisecond, 500 * time.Millisecond, 0}
	cur := g.board.Card(j).Anim.Steps()
	wantCur := []time.Duration{500 * time.Millisecond, 300 * time.Millisecond, 500 * time.Millisecond, 0}
	if got := durations(prev); !reflect.DeepEqual(got, wantPrev) {
		t.Errorf("first card steps = %v, want %v", got, wantPrev)
	}
	if got := durations(cur); !reflect.DeepEqual(got, wantCur) {
		t.Errorf("second card steps = %v, want %v", got, wantCur)
	}

	// Both cards are back face down once the animations resolve.
	run(g, 40)
	for _, i := range []int{0, j} {
		a := g.board.Card(i).Anim
		if a.Index() != a.Len()-1 {
			t.Errorf("card %d still animating at step %d", i, a.Index())
		}
	}
	if got := g.fb.Get(1, 1); got != '░' {
		t.Errorf("card 0 shows %q, want its back", got)
	}
}

func durations(steps []anim.Step) []time.Duration {
	out := make([]time.Duration, len(steps))
	for i, s := range steps {
		out[i] = s.Duration
	}
	return out
}

func TestMatch(t *testing.T) {
	g := newGame(5)
	skipIntro(t, g)
	plant(g, 7, 0, 13)

	g.Select(0)
	if g.board.Card(0).ID != 7 {
		t.Fatalf("ID = %d, want 7 face up", g.board.Card(0).ID)
	}
	g.Select(13)

	if g.board.Card(0).ID != 0 || g.board.Card(13).ID != 0 {
		t.Errorf("IDs = %d, %d, want removed", g.board.Card(0).ID, g.board.Card(13).ID)
	}
	if g.misses != 0 || g.pairs != 1 {
		t.Errorf("misses=%d pairs=%d, want 0 1", g.misses, g.pairs)
	}
	if g.turn.Selected() != noSelection {
		t.Errorf("Selected() = %d, want none", g.turn.Selected())
	}

	if len(g.ambient) != 1 {
		t.Fatalf("ambient = %d, want the caption", len(g.ambient))
	}
	steps := g.ambient[0].Steps()
	caption, ok := steps[0].Behavior.(anim.Text)
	name := g.deck.Card(7).Name
	if name != "Self" {
		t.Fatalf("deck face 7 = %q, want Self", name)
	}
	if !ok || caption.Params.Text != name {
		t.Fatalf("caption = %#v, want %s", steps[0].Behavior, name)
	}
	if steps[0].Duration != 2*time.Second || steps[1].Duration != 0 {
		t.Errorf("caption steps = %v, want 2s then hold", durations(steps))
	}

	run(g, 1)
	if row := g.fb.Row(10); !strings.Contains(row, name) {
		t.Errorf("caption not drawn, row 10 = %q", row)
	}

	// Both cards fade out and stay gone.
	run(g, 30)
	if got := g.fb.Get(0, 0); got == '╭' {
		t.Error("matched card still drawn")
	}
}

func TestClickDuringFlipBack(t *testing.T) {
	g := newGame(4)
	skipIntro(t, g)

	g.Select(0)
	g.Select(other(g, 0))

	// 800ms pose, then card 0 is turning back over.
	run(g, 20)
	if got := g.board.Card(0).Anim.Index(); got != 1 {
		t.Fatalf("card 0 at step %d, want mid flip-back", got)
	}

	g.Select(0)
	if g.turn.Selected() != 0 {
		t.Errorf("Selected() = %d, want 0", g.turn.Selected())
	}
	if id := g.board.Card(0).ID; id <= 0 {
		t.Errorf("ID = %d, want face up", id)
	}
	if _, ok := g.board.Card(0).Anim.Steps()[0].Behavior.(anim.Flip); !ok {
		t.Error("card 0 should start a new flip")
	}
}

// traceStep records the order in which sequences are advanced.
type traceStep struct {
	name  string
	trace *[]string
}

func (s traceStep) Apply(float64, anim.Context) {
	*s.trace = append(*s.trace, s.name)
}

func TestStepOrder(t *testing.T) {
	g := newGame(8)
	skipIntro(t, g)

	var trace []string
	var want []string
	for i := 0; i < g.board.Len(); i++ {
		name := fmt.Sprintf("card %d", i)
		if i == 5 {
			// Cards without an animation are skipped.
			g.board.Card(i).Anim = nil
			continue
		}
		g.board.Card(i).Anim = anim.New().Add(traceStep{name, &trace}, 0)
		want = append(want, name)
	}
	g.ambient = []*anim.Sequence{
		anim.New().Add(traceStep{"ambient 0", &trace}, 0),
		anim.New().Add(traceStep{"ambient 1", &trace}, 0),
	}
	want = append(want, "ambient 0", "ambient 1")

	run(g, 2)
	want = append(want, want...)
	if !reflect.DeepEqual(trace, want) {
		t.Errorf("advance order = %v, want %v", trace, want)
	}
}

func TestIgnoredClicks(t *testing.T) {
	g := newGame(6)
	skipIntro(t, g)
	plant(g, 1, 2, 3)
	g.Select(2)
	g.Select(3)
	g.Select(0)

	tests := []struct {
		name string
		idx  int
	}{
		{"negative index", -1},
		{"past the board", Size},
		{"waiting card", 0},
		{"removed card", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := g.Snapshot()
			g.Select(tt.idx)
			if after := g.Snapshot(); !reflect.DeepEqual(before, after) {
				t.Errorf("state changed:\n%+v\n%+v", before, after)
			}
		})
	}
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 0},
		{63, 59, 0},
		{64, 0, 1},
		{383, 0, 5},
		{0, 60, 6},
		{130, 65, 8},
		{383, 239, 23},
		{384, 0, -1},
		{0, 240, -1},
		{-1, 10, -1},
	}
	for _, tt := range tests {
		if got := CellAt(tt.x, tt.y); got != tt.want {
			t.Errorf("CellAt(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestClickCell(t *testing.T) {
	g := newGame(7)
	skipIntro(t, g)
	g.Render(core.NewScreen(80, 24))

	// The 60x16 board is centered: origin (10, 3).
	g.ClickCell(9, 3)
	if g.turn.Selected() != noSelection {
		t.Fatal("click left of the board selected a card")
	}
	g.ClickCell(70, 8)
	g.ClickCell(40, 19)
	if g.turn.Selected() != noSelection {
		t.Fatal("click outside the board area selected a card")
	}

	g.ClickCell(10+21, 3+5)
	if got := g.turn.Selected(); got != 8 {
		t.Errorf("Selected() = %d, want card 8", got)
	}
}

func TestWinCascade(t *testing.T) {
	g := newGame(8)
	skipIntro(t, g)

	pairs := make(map[int][]int)
	var order []int
	for i := 0; i < g.board.Len(); i++ {
		f := g.board.Card(i).Face()
		if len(pairs[f]) == 0 {
			order = append(order, f)
		}
		pairs[f] = append(pairs[f], i)
	}

	for _, f := range order {
		g.Select(pairs[f][0])
		g.Select(pairs[f][1])
	}
	last := order[len(order)-1]

	st := g.State()
	if !st.Won || st.Pairs != Size/2 {
		t.Fatalf("state = %+v, want won with all pairs", st)
	}
	want := g.deck.Card(last)
	if st.Winner != want.Name {
		t.Errorf("Winner = %q, want %q", st.Winner, want.Name)
	}
	if len(g.ambient) != 6 {
		t.Fatalf("ambient = %d, want five captions and the reveal", len(g.ambient))
	}

	var cascade time.Duration
	for _, a := range g.ambient[:5] {
		if total := a.Total(); total > cascade {
			cascade = total
		}
	}
	if cascade != 11500*time.Millisecond {
		t.Fatalf("cascade = %v, want 11.5s", cascade)
	}

	run(g, 229)
	if g.State().Link != "" || g.State().GameOver {
		t.Fatal("link revealed before the cascade ended")
	}
	run(g, 1)
	st = g.State()
	if st.Link != want.Link || !st.GameOver {
		t.Errorf("after cascade: link=%q over=%v, want %q", st.Link, st.GameOver, want.Link)
	}

	last5 := g.ambient[4].Steps()[1].Behavior.(anim.Text)
	if last5.Params.Text != want.Name {
		t.Errorf("final caption = %q, want %q", last5.Params.Text, want.Name)
	}

	// The reveal runs once.
	g.link = ""
	run(g, 10)
	if g.link != "" {
		t.Error("reveal fired again")
	}
}

func TestRestart(t *testing.T) {
	g := newGame(9)
	skipIntro(t, g)
	g.Select(0)
	g.Select(other(g, 0))
	ids := g.board.IDs()

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	st := g.State()
	if st.Misses != 0 || st.Ready {
		t.Errorf("state after restart = %+v", st)
	}
	if reflect.DeepEqual(ids, g.board.IDs()) {
		t.Error("restart dealt the same board")
	}
}

func TestDeterminism(t *testing.T) {
	play := func(seed int64) Snapshot {
		g := newGame(seed)
		skipIntro(t, g)
		g.Select(0)
		g.Select(other(g, 0))
		g.Select(5)
		run(g, 20)
		return g.Snapshot()
	}

	a, b := play(12345), play(12345)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed, different games:\n%+v\n%+v", a, b)
	}
	if c := play(54321); reflect.DeepEqual(a.IDs, c.IDs) {
		t.Error("different seeds dealt the same board")
	}
}

func TestRender(t *testing.T) {
	g := newGame(10)
	run(g, 5)

	s := core.NewScreen(80, 24)
	g.Render(s)
	if !strings.Contains(s.Row(1), "MEMYLON") || !strings.Contains(s.Row(1), "misses: 0") {
		t.Errorf("header = %q", s.Row(1))
	}
	if !strings.Contains(s.Row(20), "memorise") {
		t.Errorf("status = %q", s.Row(20))
	}

	small := core.NewScreen(40, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Error("small window not reported")
	}
	g.ClickCell(5, 5)
	if g.turn.Selected() != noSelection {
		t.Error("click accepted on a too small window")
	}
}

func TestShufflePermutation(t *testing.T) {
	g := newGame(11)
	for trial := 0; trial < 100; trial++ {
		s := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		Shuffle(g.rng, s)
		sorted := append([]int(nil), s...)
		sort.Ints(sorted)
		for i, v := range sorted {
			if v != i {
				t.Fatalf("Shuffle lost elements: %v", s)
			}
		}
	}
}

func TestShuffleUniform(t *testing.T) {
	g := newGame(12)
	const trials = 24000
	counts := make(map[[4]int]int)
	for i := 0; i < trials; i++ {
		s := []int{0, 1, 2, 3}
		Shuffle(g.rng, s)
		counts[[4]int{s[0], s[1], s[2], s[3]}]++
	}

	if len(counts) != 24 {
		t.Fatalf("saw %d permutations, want 24", len(counts))
	}
	for p, n := range counts {
		if n < 700 || n > 1300 {
			t.Errorf("permutation %v drawn %d times, want about 1000", p, n)
		}
	}
}
