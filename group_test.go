package closer

import (
	"errors"
	"testing"
)

func TestGroup2AttemptsBothAndAggregates(t *testing.T) {
	na, nb := 0, 0
	errA := errors.New("a failed")
	g := Group2[countCloser, countCloser]{
		A: countCloser{closes: &na, err: errA},
		B: countCloser{closes: &nb},
	}

	err := g.Close()
	if na != 1 || nb != 1 {
		t.Fatalf("expected both members attempted, got a=%d b=%d", na, nb)
	}

	var gerr *GroupError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *GroupError, got %v", err)
	}
	if len(gerr.Slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(gerr.Slots))
	}
	if !errors.Is(gerr.Slots[0], errA) || gerr.Slots[1] != nil {
		t.Fatalf("unexpected slots: %v", gerr.Slots)
	}
	if !errors.Is(err, errA) {
		t.Fatalf("aggregate does not unwrap to slot error")
	}
}

func TestGroup2AllSucceed(t *testing.T) {
	na, nb := 0, 0
	g := Group2[countCloser, countCloser]{
		A: countCloser{closes: &na},
		B: countCloser{closes: &nb},
	}
	if err := g.Close(); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if na != 1 || nb != 1 {
		t.Fatalf("expected both members closed, got a=%d b=%d", na, nb)
	}
}

func TestGroup3ReportsPerSlot(t *testing.T) {
	na, nb, nc := 0, 0, 0
	errA := errors.New("a failed")
	errC := errors.New("c failed")
	g := Group3[countCloser, countCloser, countCloser]{
		A: countCloser{closes: &na, err: errA},
		B: countCloser{closes: &nb},
		C: countCloser{closes: &nc, err: errC},
	}

	err := g.Close()
	if na != 1 || nb != 1 || nc != 1 {
		t.Fatalf("expected all members attempted, got a=%d b=%d c=%d", na, nb, nc)
	}

	var gerr *GroupError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *GroupError, got %v", err)
	}
	want := []error{errA, nil, errC}
	for i, slot := range gerr.Slots {
		if (slot == nil) != (want[i] == nil) || (slot != nil && !errors.Is(slot, want[i])) {
			t.Fatalf("slot %d: got %v want %v", i, slot, want[i])
		}
	}
	if !errors.Is(err, errA) || !errors.Is(err, errC) {
		t.Fatalf("aggregate does not unwrap to every slot error")
	}
}

func TestGroup4LastSlotFailure(t *testing.T) {
	na, nb, nc, nd := 0, 0, 0, 0
	errD := errors.New("d failed")
	g := Group4[countCloser, countCloser, countCloser, countCloser]{
		A: countCloser{closes: &na},
		B: countCloser{closes: &nb},
		C: countCloser{closes: &nc},
		D: countCloser{closes: &nd, err: errD},
	}

	err := g.Close()
	if na+nb+nc+nd != 4 {
		t.Fatalf("expected all four members attempted")
	}

	var gerr *GroupError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *GroupError, got %v", err)
	}
	if gerr.Slots[0] != nil || gerr.Slots[1] != nil || gerr.Slots[2] != nil {
		t.Fatalf("unexpected failures in leading slots: %v", gerr.Slots)
	}
	if !errors.Is(gerr.Slots[3], errD) {
		t.Fatalf("slot 3: got %v want %v", gerr.Slots[3], errD)
	}
}
