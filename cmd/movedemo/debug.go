package main

import (
	"fmt"
	"os"
	"time"
)

// debugInterval is the number of frames aggregated per debug line.
const debugInterval = 60

// frameStats accumulates per-frame timing between debug lines.
// Only populated when debug output is enabled.
type frameStats struct {
	computeTime time.Duration
	drawTime    time.Duration
	frames      int
	dots        int
}

// debugLog prints averaged timing and dot counts to stderr once per
// debugInterval frames and resets the accumulator.
func (g *game) debugLog() {
	s := &g.stats
	if s.frames < debugInterval {
		return
	}
	n := time.Duration(s.frames)
	_, _ = fmt.Fprintf(os.Stderr,
		"[move] frame: %d | mode: %s | compute: %v | draw: %v | dots/frame: %d\n",
		g.frame, g.sketch.Params.Mode, s.computeTime/n, s.drawTime/n, s.dots/s.frames)
	*s = frameStats{}
}
