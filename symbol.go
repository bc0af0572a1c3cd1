package intern

import (
	"fmt"
	"io"
)

// Symbol represents a unique interned string as a dense slot index
// into the Table that produced it. The zero Symbol denotes the first
// string ever interned into its table.
//
// Symbols are plain comparable values: two Symbols from the same
// table are equal exactly when they were interned from equal string
// content, and they may be used directly as map keys. Only the table
// that produced a Symbol can resolve it; handing it to any other
// table resolves to unrelated content or panics out of range.
type Symbol struct{ slot uint32 }

// Compare orders symbols by interning order, returning -1, 0, or 1 as
// sym was interned before, at the same time as, or after other.
func (sym Symbol) Compare(other Symbol) int {
	switch {
	case sym.slot < other.slot:
		return -1
	case sym.slot > other.slot:
		return 1
	}
	return 0
}

// Less reports whether sym was interned before other, giving symbols
// a deterministic total order for sorted containers.
func (sym Symbol) Less(other Symbol) bool { return sym.slot < other.slot }

// String resolves sym against the process-wide table; it is only
// valid for symbols produced by Intern, InternStatic, or ParseSymbol.
func (sym Symbol) String() string { return Resolve(sym) }

// Format renders the resolved string content: %q quotes and escapes
// it exactly as it would the original string, every other verb writes
// the raw content.
func (sym Symbol) Format(f fmt.State, c rune) {
	if c == 'q' {
		fmt.Fprintf(f, "%q", Resolve(sym))
		return
	}
	io.WriteString(f, Resolve(sym))
}

// ParseSymbol interns s into the process-wide table; it is the
// inverse of String, and never fails.
func ParseSymbol(s string) Symbol { return Intern(s) }
