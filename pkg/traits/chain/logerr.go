package chain

import (
	"github.com/hardskulls/error-traits/pkg/traits/logext"
)

// LogErr forwards the failure through the logext side-channel and passes
// the result through unchanged. Nothing is emitted on the success path.
func (c Chain[T, E]) LogErr(prefix string) Chain[T, E] {
	return Chain[T, E]{result: logext.LogErr(c.result, prefix)}
}
