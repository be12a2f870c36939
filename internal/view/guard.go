// Package view assembles per-view state from the players service and the
// derived-metric, shot and listing packages.
package view

import "sync"

// Ticket identifies one load started by Guard.Begin.
type Ticket struct {
	Target string
	gen    uint64
}

// Guard discards results from loads that were superseded by a later Begin.
// The zero value is ready to use.
type Guard struct {
	mu     sync.Mutex
	gen    uint64
	target string
}

// Begin starts a load for target and makes it the only current one.
func (g *Guard) Begin(target string) Ticket {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
	g.target = target
	return Ticket{Target: target, gen: g.gen}
}

// Apply runs fn only if t is still current, holding the guard so no later
// Begin can interleave. It reports whether fn ran.
func (g *Guard) Apply(t Ticket, fn func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.current(t) {
		return false
	}
	fn()
	return true
}

func (g *Guard) current(t Ticket) bool {
	return t.gen == g.gen && t.Target == g.target
}
