package closer

import (
	"fmt"
	"strings"
)

// GroupError reports the outcome of closing a fixed-arity group. Slots has
// one entry per member in declaration order; a nil entry means that member
// closed cleanly.
type GroupError struct {
	Slots []error
}

// Error lists the failing slots.
func (e *GroupError) Error() string {
	var b strings.Builder
	b.WriteString("close group:")
	for i, err := range e.Slots {
		if err == nil {
			continue
		}
		fmt.Fprintf(&b, " slot %d: %v;", i, err)
	}
	return strings.TrimSuffix(b.String(), ";")
}

// Unwrap exposes the failing slot errors to errors.Is and errors.As.
func (e *GroupError) Unwrap() []error {
	errs := make([]error, 0, len(e.Slots))
	for _, err := range e.Slots {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func groupClose(slots ...error) error {
	for _, err := range slots {
		if err != nil {
			return &GroupError{Slots: slots}
		}
	}
	return nil
}

// Group2 closes two heterogeneous members as one unit. Both are always
// attempted; a failure in one never preempts the other. The returned error,
// if any, is a *GroupError with one slot per member.
type Group2[A, B Closer] struct {
	A A
	B B
}

// Close attempts every member and aggregates the outcome.
func (g Group2[A, B]) Close() error {
	return groupClose(g.A.Close(), g.B.Close())
}

// Group3 is Group2 for three members.
type Group3[A, B, C Closer] struct {
	A A
	B B
	C C
}

// Close attempts every member and aggregates the outcome.
func (g Group3[A, B, C]) Close() error {
	return groupClose(g.A.Close(), g.B.Close(), g.C.Close())
}

// Group4 is Group2 for four members.
type Group4[A, B, C, D Closer] struct {
	A A
	B B
	C C
	D D
}

// Close attempts every member and aggregates the outcome.
func (g Group4[A, B, C, D]) Close() error {
	return groupClose(g.A.Close(), g.B.Close(), g.C.Close(), g.D.Close())
}
