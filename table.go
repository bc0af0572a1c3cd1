package intern

import (
	"fmt"

	"fortio.org/safecast"
)

// Table deduplicates strings and assigns each distinct one a stable
// Symbol. Slots are handed out densely from 0 in interning order and
// are never reused; entries accumulate until the Table itself is
// unreachable. The zero Table is ready to use.
//
// A Table performs no locking: either confine it to one goroutine, or
// use the package-level functions, which wrap one shared Table in a
// reader/writer lock.
type Table struct {
	logf  func(mess string, args ...interface{})
	index map[string]Symbol
	store []string
}

// NewTable creates an empty Table with the given options applied.
func NewTable(opts ...TableOption) *Table {
	var tab Table
	tab.apply(opts...)
	return &tab
}

// Intern returns the Symbol for s, assigning the next slot if s has
// not been seen before. A new entry stores a fresh copy of s, so
// interning a slice of a larger buffer does not pin that buffer; a
// repeated intern returns the prior Symbol and allocates nothing.
func (tab *Table) Intern(s string) Symbol { return tab.intern(s, true) }

// InternStatic is Intern for strings whose backing storage already
// lives for the remainder of the process, such as string constants:
// the table records the string as given rather than copying it.
// Deduplication is byte-for-byte identical to Intern's, and the two
// paths may be mixed freely on the same content.
func (tab *Table) InternStatic(s string) Symbol { return tab.intern(s, false) }

// InternBytes interns the contents of b; the stored string never
// aliases b.
func (tab *Table) InternBytes(b []byte) Symbol { return tab.intern(string(b), false) }

func (tab *Table) intern(s string, unpin bool) Symbol {
	if sym, ok := tab.index[s]; ok {
		return sym
	}
	if unpin {
		s = string(append([]byte(nil), s...))
	}
	slot, err := safecast.Convert[uint32](len(tab.store))
	if err != nil {
		panic(fmt.Errorf("intern: table full: %w", err))
	}
	if tab.index == nil {
		tab.index = make(map[string]Symbol)
	}
	sym := Symbol{slot}
	tab.store = append(tab.store, s)
	tab.index[s] = sym
	if tab.logf != nil {
		tab.logf("interned %q @%v", s, slot)
	}
	return sym
}

func (tab *Table) lookup(s string) (Symbol, bool) {
	sym, ok := tab.index[s]
	return sym, ok
}

// Resolve returns the string content that sym was interned from. It
// never mutates the table. sym must have been produced by this exact
// Table: a slot beyond the table's extent panics, while an in-range
// Symbol from some other table silently resolves to whatever this
// table holds in that slot.
func (tab *Table) Resolve(sym Symbol) string {
	if int(sym.slot) >= len(tab.store) {
		panic(fmt.Errorf("intern: symbol @%v out of range of table of %v", sym.slot, len(tab.store)))
	}
	return tab.store[sym.slot]
}

// Len returns the number of distinct strings interned so far; it only
// ever grows.
func (tab *Table) Len() int { return len(tab.store) }
