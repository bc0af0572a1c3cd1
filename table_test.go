package intern

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Table(t *testing.T) {
	type step struct {
		name string
		f    func(t *testing.T, tab *Table)
	}

	for _, tc := range []struct {
		name  string
		steps []step
	}{
		{"dedup", []step{
			{"first intern assigns slot 0", func(t *testing.T, tab *Table) {
				require.Equal(t, Symbol{0}, tab.Intern("A"), "expected the first slot")
				require.Equal(t, 1, tab.Len(), "expected a single entry")
			}},
			{"repeat intern hits", func(t *testing.T, tab *Table) {
				require.Equal(t, Symbol{0}, tab.Intern("A"), "expected the same slot")
				require.Equal(t, 1, tab.Len(), "expected no new entry")
			}},
			{"next string gets next slot", func(t *testing.T, tab *Table) {
				sym := tab.Intern("B")
				require.Equal(t, Symbol{1}, sym, "expected the second slot")
				require.NotEqual(t, tab.Intern("A"), sym, "distinct strings must differ")
				require.Equal(t, 2, tab.Len(), "expected two entries")
			}},
			{"later repeat still hits", func(t *testing.T, tab *Table) {
				require.Equal(t, Symbol{0}, tab.Intern("A"), "expected the original slot")
			}},
			{"resolve round trips", func(t *testing.T, tab *Table) {
				require.Equal(t, "A", tab.Resolve(Symbol{0}))
				require.Equal(t, "B", tab.Resolve(Symbol{1}))
			}},
		}},

		{"case sensitive", []step{
			{"intern both casings", func(t *testing.T, tab *Table) {
				upper, lower := tab.Intern("String"), tab.Intern("string")
				require.NotEqual(t, upper, lower, "casings must not collapse")
				require.Equal(t, 2, tab.Len(), "expected two entries")
				require.Equal(t, "String", tab.Resolve(upper))
				require.Equal(t, "string", tab.Resolve(lower))
			}},
		}},

		{"static and copied paths agree", []step{
			{"static first", func(t *testing.T, tab *Table) {
				sym := tab.InternStatic("pinned")
				require.Equal(t, sym, tab.Intern("pinned"), "copying path must hit the static entry")
				require.Equal(t, "pinned", tab.Resolve(sym))
			}},
			{"copied first", func(t *testing.T, tab *Table) {
				sym := tab.Intern("copied")
				require.Equal(t, sym, tab.InternStatic("copied"), "static path must hit the copied entry")
				require.Equal(t, "copied", tab.Resolve(sym))
				require.Equal(t, 2, tab.Len(), "expected two entries total")
			}},
		}},

		{"bytes", []step{
			{"intern from a byte slice", func(t *testing.T, tab *Table) {
				buf := []byte("buffer")
				sym := tab.InternBytes(buf)
				require.Equal(t, sym, tab.Intern("buffer"), "expected the same entry")
				buf[0] = 'X'
				require.Equal(t, "buffer", tab.Resolve(sym), "stored string must not alias the slice")
			}},
		}},

		{"round trip", []step{
			{"assorted content", func(t *testing.T, tab *Table) {
				for _, s := range []string{
					"",
					"a",
					"hello, world",
					"line\nbreak\tand\ttabs",
					"ünïcödé — 日本語",
					`quo"ted`,
				} {
					require.Equal(t, s, tab.Resolve(tab.Intern(s)), "round trip of %q", s)
				}
			}},
		}},

		{"monotonic growth", []step{
			{"grows only on novelty", func(t *testing.T, tab *Table) {
				prior := tab.Len()
				for i := 0; i < 10; i++ {
					tab.Intern(fmt.Sprintf("entry-%v", i%5))
					require.GreaterOrEqual(t, tab.Len(), prior, "count must never decrease")
					prior = tab.Len()
				}
				require.Equal(t, 5, tab.Len(), "expected one entry per distinct string")
			}},
		}},

		{"out of range", []step{
			{"resolve past the extent panics", func(t *testing.T, tab *Table) {
				tab.Intern("only")
				require.Panics(t, func() { tab.Resolve(Symbol{1}) }, "one past the end")
				require.Panics(t, func() { tab.Resolve(Symbol{99}) }, "far past the end")
				require.Equal(t, "only", tab.Resolve(Symbol{0}), "valid slot unaffected")
			}},
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var tab Table
			for _, step := range tc.steps {
				if !t.Run(step.name, func(t *testing.T) { step.f(t, &tab) }) {
					break
				}
			}
		})
	}
}

func TestNewTable(t *testing.T) {
	t.Run("with capacity", func(t *testing.T) {
		tab := NewTable(WithCapacity(8))
		require.Equal(t, 0, tab.Len(), "capacity is not length")
		for i := 0; i < 8; i++ {
			require.Equal(t, Symbol{uint32(i)}, tab.Intern(fmt.Sprintf("cap-%v", i)), "slots stay dense")
		}
	})

	t.Run("with logf", func(t *testing.T) {
		var log []string
		tab := NewTable(TableOptions(
			WithCapacity(4),
			nil,
			WithLogf(func(mess string, args ...interface{}) {
				log = append(log, fmt.Sprintf(mess, args...))
			}),
		))
		tab.Intern("x")
		tab.Intern("x")
		tab.Intern("y")
		require.Equal(t, []string{
			`interned "x" @0`,
			`interned "y" @1`,
		}, log, "only new slots are traced")
		assert.Equal(t, 2, tab.Len())
	})
}
