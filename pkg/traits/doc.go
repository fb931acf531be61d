// Package traits defines the two generic value shapes the combinator
// packages operate on: Result[T, E], a two-variant outcome carrying either a
// success value or a failure value, and Option[T], a container that either
// holds a value or is empty.
//
// Both are plain immutable value types. Every combinator in the
// subpackages (wrap, transform, logext, chain) consumes them by value and
// produces a fresh value; nothing here holds shared state or performs I/O.
//
// Go methods cannot introduce new type parameters, so operations that change
// a type parameter (for example replacing the failure type) live in the
// subpackages as generic free functions taking the value as first argument.
package traits
