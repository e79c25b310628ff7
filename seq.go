package closer

import (
	"fmt"
	"strings"
)

// SeqError reports the outcome of closing an ordered sequence. Errs has one
// entry per element in original order; a nil entry means that element
// closed cleanly.
type SeqError struct {
	Errs []error
}

// Error lists the failing indices.
func (e *SeqError) Error() string {
	var b strings.Builder
	b.WriteString("close sequence:")
	for i, err := range e.Errs {
		if err == nil {
			continue
		}
		fmt.Fprintf(&b, " [%d]: %v;", i, err)
	}
	return strings.TrimSuffix(b.String(), ";")
}

// Failed returns the indices whose close failed, in order.
func (e *SeqError) Failed() []int {
	var idx []int
	for i, err := range e.Errs {
		if err != nil {
			idx = append(idx, i)
		}
	}
	return idx
}

// Unwrap exposes the failing element errors to errors.Is and errors.As.
func (e *SeqError) Unwrap() []error {
	errs := make([]error, 0, len(e.Errs))
	for _, err := range e.Errs {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Seq closes an ordered sequence of closables as one unit. Every element is
// attempted in order regardless of earlier failures, so a multi-resource
// teardown always reports the complete picture.
type Seq[T Closer] []T

// Close attempts every element and aggregates the outcome. The returned
// error, if any, is a *SeqError with one entry per element.
func (s Seq[T]) Close() error {
	failed := false
	errs := make([]error, len(s))
	for i, c := range s {
		errs[i] = c.Close()
		if errs[i] != nil {
			failed = true
		}
	}
	if !failed {
		return nil
	}
	return &SeqError{Errs: errs}
}
