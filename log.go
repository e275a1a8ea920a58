package dispatch

import "github.com/go-logr/logr"

var log = logr.Discard()

// SetLogger routes the package's diagnostics to l. Call it once during
// startup, before any concurrent use of the package.
func SetLogger(l logr.Logger) {
	log = l.WithName("dispatch")
}
