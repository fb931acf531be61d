package transform

import (
	"fmt"

	"github.com/hardskulls/error-traits/pkg/traits"
)

// MapErrBy replaces the failure value with one built by the producer,
// ignoring the original failure entirely. It exists so callers that want a
// fixed replacement error do not have to accept-and-discard the old one in
// a closure. On the success path the producer is never invoked.
func MapErrBy[T, E, N any](r traits.Result[T, E], produce func() N) traits.Result[T, N] {
	if v, ok := r.Get(); ok {
		return traits.Ok[T, N](v)
	}
	return traits.Err[T](produce())
}

// MapErrToStr replaces the failure value with its textual rendering.
// Rendering goes through fmt.Sprint, which honors error and fmt.Stringer
// implementations on E.
func MapErrToStr[T, E any](r traits.Result[T, E]) traits.Result[T, string] {
	if v, ok := r.Get(); ok {
		return traits.Ok[T, string](v)
	}
	return traits.Err[T](fmt.Sprint(r.Err()))
}

// MapType pipes any value through a transformation. It is not specific to
// results; it lets a conversion read left-to-right inside a pipeline instead
// of wrapping the whole expression in a call.
func MapType[M, N any](v M, f func(M) N) N {
	return f(v)
}

// PassErrWith returns the result unchanged, invoking the observer with the
// failure value first when the result is the failure variant. The observer
// is never invoked on the success path. Intended for side-channel
// instrumentation that must not alter control flow.
func PassErrWith[T, E any](r traits.Result[T, E], observe func(E)) traits.Result[T, E] {
	if e, isErr := r.GetErr(); isErr {
		observe(e)
	}
	return r
}
