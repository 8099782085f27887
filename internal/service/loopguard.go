package service

// defaultGuardWindow is the default number of recent page signatures kept for
// loop detection.
const defaultGuardWindow = 3

// loopGuard detects pagination anomalies within a single sync run by keeping
// a bounded window of the most recent page signatures.
//
// The window is session-scoped: the engine calls Reset at the start of every
// run, so signatures from a previous run can never trigger a false positive
// in a later one.
type loopGuard struct {
	window int
	recent []string
}

func newLoopGuard(window int) *loopGuard {
	if window <= 0 {
		window = defaultGuardWindow
	}
	return &loopGuard{window: window}
}

// Reset discards all recorded signatures, starting a fresh session.
func (g *loopGuard) Reset() {
	g.recent = g.recent[:0]
}

// Observe records a signature and reports whether an identical one already
// exists in the current window, meaning the server re-served a page.
func (g *loopGuard) Observe(signature string) bool {
	for _, seen := range g.recent {
		if seen == signature {
			return true
		}
	}

	g.recent = append(g.recent, signature)
	if len(g.recent) > g.window {
		g.recent = g.recent[1:]
	}
	return false
}
