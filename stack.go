package closer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// StackError reports which stack entries failed to close, in teardown
// order.
type StackError struct {
	Failures []StackFailure
}

// StackFailure is one failed entry.
type StackFailure struct {
	Name string
	Err  error
}

// Error lists the failing entries.
func (e *StackError) Error() string {
	var b strings.Builder
	b.WriteString("close stack:")
	for _, f := range e.Failures {
		fmt.Fprintf(&b, " %s: %v;", f.Name, f.Err)
	}
	return strings.TrimSuffix(b.String(), ";")
}

// Unwrap exposes the entry errors to errors.Is and errors.As.
func (e *StackError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return errs
}

type stackEntry struct {
	name string
	c    Closer
}

// Stack collects named closers and tears them down in reverse push order,
// the inverse of acquisition. Every entry is attempted regardless of
// earlier failures. Stack satisfies Closer, so it nests inside Closing or
// another composite.
//
// Close drains the stack; a second Close finds it empty and returns nil.
type Stack struct {
	mu      sync.Mutex
	entries []stackEntry
}

// Push registers c for teardown under name. Later pushes close first.
func (s *Stack) Push(name string, c Closer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, stackEntry{name: name, c: c})
}

// Len reports how many entries remain registered.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close tears down all entries LIFO and aggregates failures into a
// *StackError.
func (s *Stack) Close() error {
	s.mu.Lock()
	entries := s.entries
	s.entries = nil
	s.mu.Unlock()

	var failures []StackFailure
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if err := e.c.Close(); err != nil {
			failures = append(failures, StackFailure{Name: e.name, Err: err})
			continue
		}
		log.Debug().Str("resource", e.name).Msg("closed")
	}
	if len(failures) == 0 {
		return nil
	}
	return &StackError{Failures: failures}
}
