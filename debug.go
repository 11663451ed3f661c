package photogesture

import (
	"fmt"
	"io"
	"os"
)

// SetDebug enables or disables gesture tracing. Trace lines go to stderr
// prefixed with [photogesture].
func (c *Controller) SetDebug(enabled bool) {
	c.debug = enabled
	if c.debugOut == nil {
		c.debugOut = os.Stderr
	}
}

// setDebugWriter redirects trace output. Used by tests.
func (c *Controller) setDebugWriter(w io.Writer) {
	c.debugOut = w
}

// debugLog prints one trace line when debug is enabled.
func (c *Controller) debugLog(format string, args ...any) {
	if !c.debug || c.debugOut == nil {
		return
	}
	_, _ = fmt.Fprintf(c.debugOut, "[photogesture] "+format+"\n", args...)
}

// debugCheckScale warns when the scale has left the range a gesture may
// reach. This should never happen; it flags a broken geometry update.
func (c *Controller) debugCheckScale(where string) {
	if !c.debug || !c.geom.Valid() {
		return
	}
	lo, hi := ScaleBounds(c.cfg, c.geom)
	lo -= c.cfg.ScaleBuffer
	if c.scale < lo-1e-9 || c.scale > hi+1e-9 {
		c.debugLog("warning: %s left scale %v outside [%v, %v]", where, c.scale, lo, hi)
	}
}
