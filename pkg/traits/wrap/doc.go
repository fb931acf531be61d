// Package wrap provides combinators that move plain values into and out of
// the Result and Option shapes.
//
// Key operations:
// - MergeOkErr: collapse Result[T, T] into T regardless of variant
// - InOk/InErr: lift any value into a chosen Result variant without
//   constructor noise at the call site
// - ToNoneIf/ToErrIf: wrap a value conditionally, driven by a predicate
// - ToEmpty: discard a value, ending a side-effect-only pipeline
//
// Every function here is total: for any input variant the output is
// well defined, and none of them can fail or panic.
package wrap
