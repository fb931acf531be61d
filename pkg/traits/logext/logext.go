package logext

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/hardskulls/error-traits/pkg/traits"
)

// logger, when set, replaces slog.Default() for all emissions from this
// package. Held atomically so a swap is safe even while emissions run.
var logger atomic.Pointer[slog.Logger]

// SetLogger routes failure messages to the given logger instead of the
// process default. Passing nil restores slog.Default().
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func active() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// LogErr returns the result unchanged, emitting the failure's textual
// rendering prefixed by prefix at error level when the result is the
// failure variant. Nothing is emitted on the success path.
//
// The library only builds and forwards the message; delivery, formatting
// and thread safety are the configured handler's contract.
func LogErr[T, E any](r traits.Result[T, E], prefix string) traits.Result[T, E] {
	if e, isErr := r.GetErr(); isErr {
		active().Error(prefix + fmt.Sprint(e))
	}
	return r
}
