// Package transform provides combinators that reshape the failure side of a
// Result or pipe a plain value through a conversion.
//
// Key operations:
// - MapErrBy: swap the failure value for one built by a producer
// - MapErrToStr: swap the failure value for its textual rendering
// - MapType: apply a function to any value, pipeline-style
// - PassErrWith: observe the failure value without changing the result
//
// Success values always pass through untouched; only the failure variant is
// ever rewritten, and only where the operation says so.
package transform
