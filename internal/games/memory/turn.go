package memory

import (
	"context"

	"github.com/looplab/fsm"
)

// Turn states and events.
const (
	stateIdle     = "idle"
	stateSelected = "selected"

	eventSelect  = "select"
	eventResolve = "resolve"
)

// turn tracks whether a face-up card is waiting for its pair.
type turn struct {
	fsm      *fsm.FSM
	selected int
}

func newTurn() *turn {
	t := &turn{selected: noSelection}
	t.fsm = fsm.NewFSM(
		stateIdle,
		fsm.Events{
			{Name: eventSelect, Src: []string{stateIdle}, Dst: stateSelected},
			{Name: eventResolve, Src: []string{stateSelected}, Dst: stateIdle},
		},
		fsm.Callbacks{
			"enter_" + stateSelected: func(_ context.Context, e *fsm.Event) {
				t.selected = e.Args[0].(int)
			},
			"enter_" + stateIdle: func(_ context.Context, _ *fsm.Event) {
				t.selected = noSelection
			},
		},
	)
	return t
}

// Idle reports whether no card is waiting.
func (t *turn) Idle() bool {
	return t.fsm.Is(stateIdle)
}

// Selected returns the waiting card index, or noSelection.
func (t *turn) Selected() int {
	return t.selected
}

// State returns the state name.
func (t *turn) State() string {
	return t.fsm.Current()
}

// Select marks card i as waiting for its pair.
func (t *turn) Select(i int) error {
	return t.fsm.Event(context.Background(), eventSelect, i)
}

// Resolve ends the turn after the second card.
func (t *turn) Resolve() error {
	return t.fsm.Event(context.Background(), eventResolve)
}
