package traits

// Some builds an Option holding the given value.
func Some[T any](t T) Option[T] {
	return Option[T]{
		item: t,
		ok:   true,
	}
}

// None builds an Option holding nothing.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Option either holds a value of type T or is empty. Combinators produce it
// where absence is a legitimate answer rather than a failure; when the
// missing case carries a reason, use Result instead.
type Option[T any] struct {
	item T
	ok   bool
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the held value and whether one is present. An empty Option
// yields the zero value of T, so check the flag to tell the two apart.
func (o Option[T]) Get() (T, bool) {
	return o.item, o.ok
}

// GetOr returns the held value, falling back to t when the Option is empty.
func (o Option[T]) GetOr(t T) T {
	if !o.ok {
		return t
	}
	return o.item
}
