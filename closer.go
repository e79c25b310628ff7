package closer

// Closer is the contract for fallible, ownership-consuming teardown.
//
// It is structurally identical to io.Closer, so every closer in the
// ecosystem satisfies it as-is. The contract itself makes no promise about
// how often Close may be called on a given value; at-most-once per instance
// is enforced by the Closing wrapper. Callers holding a bare Closer outside
// the wrapper are responsible for not closing it twice.
type Closer interface {
	Close() error
}

// Func adapts an ordinary function to the Closer interface, following the
// net/http.HandlerFunc pattern.
type Func func() error

// Close calls f.
func (f Func) Close() error {
	return f()
}

// Nop is a Closer that does nothing and always succeeds.
var Nop = Func(func() error {
	return nil
})
