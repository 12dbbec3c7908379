package thicket

import (
	"fmt"
	"os"
	"time"
)

// globalDebug mirrors the most recently set ContainerState debug flag so that
// object operations (which lack a container pointer) can check it cheaply.
// Only valid with a single debug setting across containers; multiple
// containers with differing debug modes will reflect whichever called
// SetDebugMode last.
var globalDebug bool

// debugStats holds per-render-pass timing and sweep metrics.
// Only populated when ContainerState.debug is true.
type debugStats struct {
	traverseTime time.Duration
	flushTime    time.Duration
	rendered     int
	swept        int
	commandCount int
}

// debugLog prints render-pass stats to stderr.
func (s *ContainerState) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[thicket] traverse: %v | flush: %v | total: %v\n",
		stats.traverseTime, stats.flushTime, stats.traverseTime+stats.flushTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[thicket] rendered: %d | swept: %d | commands: %d\n",
		stats.rendered, stats.swept, stats.commandCount)
}

// debugCheckDestroyed panics with a descriptive message when a destroyed
// object is reached by a tree operation. Only called in debug mode.
func debugCheckDestroyed(n *Node, op string) {
	if n.destroyed {
		panic(fmt.Sprintf("thicket debug: %s on destroyed object %q (ID %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[thicket] warning: tree depth %d exceeds %d (object %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if an object has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[thicket] warning: object %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
