// Package chain provides a fluent wrapper around Result[T, E]
// for building synchronous pipelines from the wrap and transform
// combinators.
//
// Same-type steps are methods; steps that change a type parameter are
// package-level generic functions, since Go methods cannot introduce new
// type parameters.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a plain value
// - Map/Then: transform the successful value, or switch to a new Result
// - Ensure/PassErr/LogErr: run side effects without changing the result
// - MapErr/MapErrBy/MapErrToStr: rewrite the failure side
// - Finally: collapse the chain into a final value via handlers
package chain
