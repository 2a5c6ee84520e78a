package quill

import (
	"time"
)

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugStats holds per-frame timing metrics. Only populated in debug mode.
type debugStats struct {
	updateTime   time.Duration
	orderTime    time.Duration
	submitTime   time.Duration
	commandCount int
	skipped      int
}

// debugLog reports frame stats at debug level.
func debugLog(stats debugStats) {
	Logger().Debug("quill frame",
		"update", stats.updateTime,
		"order", stats.orderTime,
		"submit", stats.submitTime,
		"total", stats.updateTime+stats.orderTime+stats.submitTime,
		"commands", stats.commandCount,
		"skipped", stats.skipped,
	)
}

// debugMaxTreeDepth is the depth above which AddChild warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("quill: tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth, "node", n.Name)
	}
}

// debugMaxChildCount is the child count above which AddChild warns.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		Logger().Warn("quill: node has too many children",
			"node", n.Name, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}
