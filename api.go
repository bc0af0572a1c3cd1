package intern

import (
	"sync"

	"github.com/jcorbin/intern/internal/poison"
)

// The process-wide table behind the package-level functions. Grown
// lazily on first miss, never torn down: its entries are deliberately
// retained until process exit.
var global struct {
	sync.RWMutex
	guard poison.Guard
	tab   Table
}

// Intern returns the Symbol for s in the process-wide table, storing
// a copy of s if it has not been seen before. Safe for concurrent use
// from any goroutine.
func Intern(s string) Symbol { return globalIntern((*Table).Intern, s) }

// InternStatic is Intern without the defensive copy, for strings
// whose storage is pinned for the remainder of the process; see
// Table.InternStatic. Safe for concurrent use from any goroutine.
func InternStatic(s string) Symbol { return globalIntern((*Table).InternStatic, s) }

// Resolve returns the string content of a Symbol produced by Intern,
// InternStatic, or ParseSymbol. Safe for concurrent use; resolves
// proceed in parallel with each other, serialized only against
// in-flight interning. Symbols from an explicit Table must instead be
// resolved by that Table.
func Resolve(sym Symbol) string {
	global.RLock()
	defer global.RUnlock()
	global.guard.Check()
	return global.tab.Resolve(sym)
}

// Len returns the number of distinct strings interned process-wide so
// far.
func Len() int {
	global.RLock()
	defer global.RUnlock()
	global.guard.Check()
	return global.tab.Len()
}

func globalIntern(f func(*Table, string) Symbol, s string) (sym Symbol) {
	if sym, hit := globalLookup(s); hit {
		return sym
	}
	global.Lock()
	defer global.Unlock()
	global.guard.Protect("global intern table", func() {
		sym = f(&global.tab, s)
	})
	return sym
}

func globalLookup(s string) (Symbol, bool) {
	global.RLock()
	defer global.RUnlock()
	global.guard.Check()
	return global.tab.lookup(s)
}

// WithLogf arranges for logfn to be called once per newly assigned
// slot; lookups that hit an existing entry are not traced.
func WithLogf(logfn func(mess string, args ...interface{})) TableOption { return withLogfn(logfn) }

// WithCapacity pre-sizes a Table for n distinct strings.
func WithCapacity(n int) TableOption { return withCapacity(n) }
