package closer

import (
	"errors"
	"testing"
)

func TestSeqMiddleFailureReportsPerIndex(t *testing.T) {
	counts := [3]int{}
	e1 := errors.New("element 1 failed")
	s := Seq[countCloser]{
		{closes: &counts[0]},
		{closes: &counts[1], err: e1},
		{closes: &counts[2]},
	}

	err := s.Close()
	for i, n := range counts {
		if n != 1 {
			t.Fatalf("element %d: expected one close, got %d", i, n)
		}
	}

	var serr *SeqError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *SeqError, got %v", err)
	}
	if len(serr.Errs) != 3 {
		t.Fatalf("expected one entry per element, got %d", len(serr.Errs))
	}
	if serr.Errs[0] != nil || !errors.Is(serr.Errs[1], e1) || serr.Errs[2] != nil {
		t.Fatalf("unexpected per-index errors: %v", serr.Errs)
	}
	if got := serr.Failed(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("unexpected failed indices: %v", got)
	}
	if !errors.Is(err, e1) {
		t.Fatalf("aggregate does not unwrap to element error")
	}
}

func TestSeqAllSucceed(t *testing.T) {
	counts := [2]int{}
	s := Seq[countCloser]{
		{closes: &counts[0]},
		{closes: &counts[1]},
	}
	if err := s.Close(); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if counts[0] != 1 || counts[1] != 1 {
		t.Fatalf("expected every element closed, got %v", counts)
	}
}

func TestSeqEmptySucceeds(t *testing.T) {
	var s Seq[countCloser]
	if err := s.Close(); err != nil {
		t.Fatalf("empty sequence close: %v", err)
	}
}

func TestSeqAttemptsAllDespiteEveryFailure(t *testing.T) {
	counts := [4]int{}
	s := make(Seq[countCloser], 0, len(counts))
	for i := range counts {
		s = append(s, countCloser{closes: &counts[i], err: errors.New("broken")})
	}

	err := s.Close()
	for i, n := range counts {
		if n != 1 {
			t.Fatalf("element %d: expected one close, got %d", i, n)
		}
	}

	var serr *SeqError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *SeqError, got %v", err)
	}
	if got := serr.Failed(); len(got) != len(counts) {
		t.Fatalf("expected every index to fail, got %v", got)
	}
}

func TestSeqOfWrappersClosesEachOnce(t *testing.T) {
	counts := [2]int{}
	s := Seq[Closer]{
		Wrap(countCloser{closes: &counts[0]}),
		Wrap(countCloser{closes: &counts[1]}),
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close sequence of wrappers: %v", err)
	}
	if counts[0] != 1 || counts[1] != 1 {
		t.Fatalf("expected each wrapper closed once, got %v", counts)
	}
}
