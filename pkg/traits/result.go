package traits

// Result is a two-variant outcome: either Ok carrying a success value of
// type T, or Err carrying a failure value of type E. Unlike the usual
// (T, error) pair, the failure side is a full type parameter, so combinators
// may replace it with another type entirely.
type Result[T, E any] struct {
	value T
	err   E
	isOk  bool
}

// Ok wraps a value into the success variant.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value: v,
		isOk:  true,
	}
}

// Err wraps a value into the failure variant. The success type parameter
// comes first so call sites can name it and let E be inferred:
//
//	r := traits.Err[int]("parse failed")
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		err: e,
	}
}

// IsOk reports whether the result is the success variant.
func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

// IsErr reports whether the result is the failure variant.
func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

// Value returns the success value, or the zero value of T on the failure
// variant.
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the failure value, or the zero value of E on the success
// variant.
func (r Result[T, E]) Err() E {
	return r.err
}

// Get returns the success value together with a flag telling whether the
// result actually is the success variant.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.isOk
}

// GetErr returns the failure value together with a flag telling whether the
// result actually is the failure variant.
func (r Result[T, E]) GetErr() (E, bool) {
	return r.err, !r.isOk
}
