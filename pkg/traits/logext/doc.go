// Package logext is the logging side-channel extension: it observes failure
// values in passing and forwards them to a process-wide slog logger, without
// altering the result flowing through.
//
// The package never configures, initializes, or tears down the logger; it
// uses slog.Default() unless SetLogger installed another one. The pure
// combinator packages do not depend on this package, so applications that do
// not log can ignore it entirely.
package logext
