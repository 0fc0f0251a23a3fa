package memory

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	IDs         []int
	Turn        string // "idle" or "selected"
	Selected    int    // -1 when no card is waiting
	Misses      int
	Pairs       int
	Interactive bool
	Ambient     int // Number of ambient sequences
	Winner      int // Face value of the last pair, 0 until won
	Link        string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		IDs:         g.board.IDs(),
		Turn:        g.turn.State(),
		Selected:    g.turn.Selected(),
		Misses:      g.misses,
		Pairs:       g.pairs,
		Interactive: g.interactive,
		Ambient:     len(g.ambient),
		Winner:      g.winner,
		Link:        g.link,
	}
}
