/* Package poison fails loudly after a panic escapes shared state.

A panic that unwinds out of a critical section can leave the guarded
state half-written; letting later users read it would silently return
corrupt results. A Guard embedded next to such state records the first
escaping panic and turns every subsequent access into an unambiguous
fatal panic instead.
*/
package poison

import "runtime/debug"

// Guard marks state unusable once a mutation of it has panicked. The
// zero Guard is healthy. A Guard provides no locking of its own: call
// Protect under the same exclusion that guards the state it protects,
// and Check under at least shared access.
type Guard struct {
	err *Error
}

// Check panics with the poisoning Error if the guarded state has been
// poisoned; otherwise it is a no-op. Call it before every read of the
// guarded state.
func (g *Guard) Check() {
	if g.err != nil {
		panic(g.err)
	}
}

// Protect runs a mutation of the guarded state, first checking for
// prior poisoning. If f panics, the guard is poisoned and the panic
// continues as an Error naming the state and capturing the original
// value and stack.
func (g *Guard) Protect(name string, f func()) {
	g.Check()
	defer func() {
		if e := recover(); e != nil {
			if g.err == nil {
				g.err = &Error{name: name, value: e, stack: debug.Stack()}
			}
			panic(g.err)
		}
	}()
	f()
}

// Poisoned returns true once a protected mutation has panicked.
func (g *Guard) Poisoned() bool { return g.err != nil }
