package closer

// Option is a closable that may hold no value. Closing None always
// succeeds; closing Some delegates to the contained value.
type Option[T Closer] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T Closer](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T Closer]() Option[T] {
	return Option[T]{}
}

// Get returns the contained value and whether one is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Close delegates to the contained value, if any.
func (o Option[T]) Close() error {
	if !o.ok {
		return nil
	}
	return o.value.Close()
}
