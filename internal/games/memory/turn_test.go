package memory

import "testing"

func TestTurn(t *testing.T) {
	tr := newTurn()
	if !tr.Idle() || tr.Selected() != noSelection {
		t.Fatalf("new turn = %s/%d", tr.State(), tr.Selected())
	}

	if err := tr.Resolve(); err == nil {
		t.Error("Resolve() while idle: want error")
	}

	if err := tr.Select(3); err != nil {
		t.Fatalf("Select(3) = %v", err)
	}
	if tr.Idle() || tr.Selected() != 3 {
		t.Errorf("after Select(3) = %s/%d", tr.State(), tr.Selected())
	}

	if err := tr.Select(4); err == nil {
		t.Error("second Select: want error")
	}
	if tr.Selected() != 3 {
		t.Errorf("Selected() = %d after rejected select", tr.Selected())
	}

	if err := tr.Resolve(); err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	if !tr.Idle() || tr.Selected() != noSelection {
		t.Errorf("after Resolve = %s/%d", tr.State(), tr.Selected())
	}
}
