package closer

// Box owns a closable value behind a pointer indirection and closes
// through it. Closing a boxed value is observationally identical to closing
// the value directly; the indirection only matters when the value must live
// on the heap or be mutated through Get while boxed.
type Box[T Closer] struct {
	ptr *T
}

// NewBox moves v behind a fresh pointer.
func NewBox[T Closer](v T) Box[T] {
	return Box[T]{ptr: &v}
}

// Get returns the pointer to the boxed value.
func (b Box[T]) Get() *T {
	return b.ptr
}

// Close delegates to the boxed value.
func (b Box[T]) Close() error {
	return (*b.ptr).Close()
}
