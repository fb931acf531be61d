package chain

import (
	"github.com/hardskulls/error-traits/pkg/traits"
	"github.com/hardskulls/error-traits/pkg/traits/transform"
	"github.com/hardskulls/error-traits/pkg/traits/wrap"
)

// Chain wraps a traits.Result to enable fluent chaining
type Chain[T, E any] struct {
	result traits.Result[T, E]
}

// Start creates a new chain from a traits.Result
func Start[T, E any](result traits.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[E, T any](value T) Chain[T, E] {
	return Chain[T, E]{result: wrap.InOk[E](value)}
}

// Result returns the underlying traits.Result
func (c Chain[T, E]) Result() traits.Result[T, E] {
	return c.result
}

// Map transforms the successful value without changing its type
func (c Chain[T, E]) Map(onOk func(T) T) Chain[T, E] {
	if v, ok := c.result.Get(); ok {
		return Chain[T, E]{result: traits.Ok[T, E](onOk(v))}
	}
	return c
}

// Ensure performs a side effect on the successful value without changing the result
func (c Chain[T, E]) Ensure(onOk func(T)) Chain[T, E] {
	if v, ok := c.result.Get(); ok {
		onOk(v)
	}
	return c
}

// PassErr performs a side effect on the failure value without changing the result
func (c Chain[T, E]) PassErr(onErr func(E)) Chain[T, E] {
	return Chain[T, E]{result: transform.PassErrWith(c.result, onErr)}
}

// MapErr transforms the failure value without changing its type
func (c Chain[T, E]) MapErr(onErr func(E) E) Chain[T, E] {
	if e, isErr := c.result.GetErr(); isErr {
		return Chain[T, E]{result: traits.Err[T](onErr(e))}
	}
	return c
}

// Then chains a function that returns a traits.Result with a new success type
func Then[T, E, U any](c Chain[T, E], onOk func(T) traits.Result[U, E]) Chain[U, E] {
	if v, ok := c.result.Get(); ok {
		return Chain[U, E]{result: onOk(v)}
	}
	return Chain[U, E]{result: traits.Err[U](c.result.Err())}
}

// Map chains a pure transformation to a new success type
func Map[T, E, U any](c Chain[T, E], onOk func(T) U) Chain[U, E] {
	if v, ok := c.result.Get(); ok {
		return Chain[U, E]{result: traits.Ok[U, E](onOk(v))}
	}
	return Chain[U, E]{result: traits.Err[U](c.result.Err())}
}

// MapErrBy chains transform.MapErrBy, replacing the failure type
func MapErrBy[T, E, N any](c Chain[T, E], produce func() N) Chain[T, N] {
	return Chain[T, N]{result: transform.MapErrBy(c.result, produce)}
}

// MapErrToStr chains transform.MapErrToStr
func MapErrToStr[T, E any](c Chain[T, E]) Chain[T, string] {
	return Chain[T, string]{result: transform.MapErrToStr(c.result)}
}

// Finally collapses the chain into a final value via handlers
func Finally[T, E, U any](c Chain[T, E], onOk func(T) U, onErr func(E) U) U {
	if v, ok := c.result.Get(); ok {
		return onOk(v)
	}
	return onErr(c.result.Err())
}
