package resilience

import (
	"strings"
	"sync"
)

// SingleFlight collapses concurrent calls sharing a key into one execution.
type SingleFlight struct {
	mu    sync.Mutex
	calls map[string]*flightCall
}

type flightCall struct {
	done chan struct{}
	val  any
	err  error
	dups int
}

// Do runs fn once per in-flight key. The bool reports whether the result
// was shared with another caller.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*flightCall)
	}

	if c, ok := g.calls[key]; ok {
		c.dups++
		g.mu.Unlock()
		<-c.done
		return c.val, c.err, true
	}

	c := &flightCall{done: make(chan struct{})}
	g.calls[key] = c
	g.mu.Unlock()

	func() {
		defer close(c.done)
		c.val, c.err = fn()
	}()

	g.mu.Lock()
	if g.calls[key] == c {
		delete(g.calls, key)
	}
	shared := c.dups > 0
	g.mu.Unlock()

	return c.val, c.err, shared
}

// Forget drops the in-flight entry so the next Do starts a fresh call.
func (g *SingleFlight) Forget(key string) {
	g.mu.Lock()
	delete(g.calls, key)
	g.mu.Unlock()
}

// ForgetPrefix drops every in-flight entry whose key starts with prefix.
func (g *SingleFlight) ForgetPrefix(prefix string) {
	g.mu.Lock()
	for key := range g.calls {
		if strings.HasPrefix(key, prefix) {
			delete(g.calls, key)
		}
	}
	g.mu.Unlock()
}
