package closer

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Closing owns exactly one closable value and guarantees its Close runs at
// most once, no matter whether teardown happens explicitly (Close), by
// ownership transfer (IntoInner), or at scope exit (deferred MustClose).
//
// Internally the wrapper is a two-state cell: armed (holding a live value)
// or emptied (the value was extracted). Every owning operation funnels
// through IntoInner, which performs the armed -> emptied transition exactly
// once; the scope-exit path checks the state and stands down if the value
// is already gone.
//
// The zero value is emptied and unusable; construct with Wrap.
//
// The idiomatic acquisition site reads:
//
//	f := closer.Wrap(mustOpen(path))
//	defer f.MustClose()
//	// ... use f.Value() ...
//	return f.Close()
type Closing[T Closer] struct {
	value T
	armed bool
}

// Wrap takes ownership of v. The returned wrapper is armed from birth.
func Wrap[T Closer](v T) *Closing[T] {
	return &Closing[T]{value: v, armed: true}
}

// Value returns the contained value for transparent, non-owning use.
// It panics if the value was already extracted.
func (c *Closing[T]) Value() T {
	if !c.armed {
		panic("closer: Value on emptied wrapper")
	}
	return c.value
}

// Ref returns a pointer to the contained value so callers can mutate it in
// place. It panics if the value was already extracted.
func (c *Closing[T]) Ref() *T {
	if !c.armed {
		panic("closer: Ref on emptied wrapper")
	}
	return &c.value
}

// IntoInner transfers ownership of the contained value back to the caller
// and disarms the wrapper. This is the single extraction primitive: Close
// and MustClose both go through it, so whichever path runs first wins and
// the others become unreachable or inert. It panics on a second call.
func (c *Closing[T]) IntoInner() T {
	if !c.armed {
		panic("closer: IntoInner on emptied wrapper")
	}
	c.armed = false
	v := c.value
	var zero T
	c.value = zero
	return v
}

// Close extracts the value and closes it, handing the result to the caller.
// This is the canonical path when a teardown failure must be observed and
// handled. Closing itself satisfies Closer, so wrappers nest inside Group,
// Seq, Stack, or another Closing.
func (c *Closing[T]) Close() error {
	return c.IntoInner().Close()
}

// MustClose is the scope-exit path, meant to be deferred at the acquisition
// site. It does nothing when the value was already extracted or closed.
// If the close itself fails there is no caller left to hand an error to:
// the failure is logged and escalated as a panic carrying the error's
// diagnostic text. It is never retried and never swallowed.
//
// A panic raised by the value's own Close is not intercepted on either
// path; here it unwinds through the defer like any other panic.
func (c *Closing[T]) MustClose() {
	if !c.armed {
		return
	}
	if err := c.IntoInner().Close(); err != nil {
		log.Error().Err(err).Msg("close failed at scope exit")
		panic(fmt.Sprintf("closer: close failed at scope exit: %v", err))
	}
}
