package intern

// TableOption configures a Table under construction.
type TableOption interface{ apply(tab *Table) }

// TableOptions combines options into one.
func TableOptions(opts ...TableOption) TableOption { return tableOptions(opts) }

type tableOptions []TableOption

func (opts tableOptions) apply(tab *Table) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(tab)
		}
	}
}

func (tab *Table) apply(opts ...TableOption) {
	tableOptions(opts).apply(tab)
}

type withLogfn func(mess string, args ...interface{})
type capacityOption int

func withCapacity(n int) capacityOption { return capacityOption(n) }

func (logfn withLogfn) apply(tab *Table) {
	tab.logf = logfn
}

func (n capacityOption) apply(tab *Table) {
	if tab.index == nil {
		tab.index = make(map[string]Symbol, int(n))
	}
	if cap(tab.store) < int(n) {
		store := make([]string, len(tab.store), int(n))
		copy(store, tab.store)
		tab.store = store
	}
}
