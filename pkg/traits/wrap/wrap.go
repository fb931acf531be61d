package wrap

import (
	"github.com/hardskulls/error-traits/pkg/traits"
)

// MergeOkErr collapses a result whose two variants carry the same type into
// that type, returning the carried value whichever variant it is.
func MergeOkErr[T any](r traits.Result[T, T]) T {
	if v, ok := r.Get(); ok {
		return v
	}
	return r.Err()
}

// InOk wraps any value into the success variant. The failure type parameter
// comes first so call sites only spell the type Go cannot infer:
//
//	r := wrap.InOk[error](42)
func InOk[E, T any](v T) traits.Result[T, E] {
	return traits.Ok[T, E](v)
}

// InErr wraps any value into the failure variant:
//
//	r := wrap.InErr[int]("not found")
func InErr[T, E any](e E) traits.Result[T, E] {
	return traits.Err[T](e)
}

// ToNoneIf turns a value into an Option that is None when the predicate
// holds and Some(v) otherwise.
func ToNoneIf[T any](v T, predicate func(T) bool) traits.Option[T] {
	if predicate(v) {
		return traits.None[T]()
	}
	return traits.Some(v)
}

// ToErrIf turns a value into a result that is Err(e) when the predicate
// holds and Ok(v) otherwise.
//
// The failure payload is an ordinary argument, so its construction
// expression is evaluated before the call, whether or not the predicate
// holds. Callers with an expensive or side-effecting payload expression
// should build it themselves behind the predicate instead.
func ToErrIf[T, E any](v T, predicate func(T) bool, e E) traits.Result[T, E] {
	if predicate(v) {
		return traits.Err[T](e)
	}
	return traits.Ok[T, E](v)
}

// ToEmpty discards any value, closing a pipeline that exists only for its
// side effects.
func ToEmpty[T any](T) traits.Unit {
	return traits.Empty()
}
