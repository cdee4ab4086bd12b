package argot

// slot accumulates everything matched for one declared argument: how many
// times it occurred on the command line and the values bound to it. A slot
// filled from a default records zero occurrences.
type slot struct {
	values      []string
	count       int
	fromDefault bool
}

// Result is the outcome of a successful parse at one command level. Results
// form a chain mirroring the subcommand path; each level answers queries for
// its own arguments only.
type Result struct {
	spec *Spec
	slot map[string]*slot
	sub  *Result
	help string
}

func newResult(s *Spec) *Result {
	return &Result{
		spec: s,
		slot: make(map[string]*slot, len(s.args)),
	}
}

func (r *Result) get(name string) *slot {
	if sl, ok := r.slot[name]; ok {
		return sl
	}
	sl := &slot{}
	r.slot[name] = sl
	return sl
}

// Command returns the name of the command this result belongs to.
func (r *Result) Command() string {
	return r.spec.name
}

// Sub returns the result for the invoked subcommand, or nil when parsing
// ended at this level.
func (r *Result) Sub() *Result {
	return r.sub
}

// Leaf follows the subcommand chain to the deepest invoked level.
func (r *Result) Leaf() *Result {
	leaf := r
	for leaf.sub != nil {
		leaf = leaf.sub
	}
	return leaf
}

// HelpRequested reports whether the invocation, at this level or any deeper
// one, asked for help instead of a normal parse. When true, validation was
// skipped at the requesting level and HelpText carries the page.
func (r *Result) HelpRequested() bool {
	return r.Leaf().help != ""
}

// HelpText returns the rendered help page when HelpRequested is true.
func (r *Result) HelpText() string {
	return r.Leaf().help
}

// Count reports how many times the named argument occurred. Defaults do not
// count as occurrences.
func (r *Result) Count(name string) int {
	if sl, ok := r.slot[name]; ok {
		return sl.count
	}
	return 0
}

// Present reports whether the named argument occurred at least once.
func (r *Result) Present(name string) bool {
	return r.Count(name) > 0
}

// Values returns every value bound to the named argument, in command-line
// order, including a default when one was applied.
func (r *Result) Values(name string) []string {
	if sl, ok := r.slot[name]; ok {
		return sl.values
	}
	return nil
}

// Value returns the first bound value and whether any value exists.
func (r *Result) Value(name string) (string, bool) {
	if sl, ok := r.slot[name]; ok && len(sl.values) > 0 {
		return sl.values[0], true
	}
	return "", false
}

// MustValue returns the first bound value, or fallback when the argument has
// none.
func (r *Result) MustValue(name, fallback string) string {
	if v, ok := r.Value(name); ok {
		return v
	}
	return fallback
}

// String returns the first bound value, or "" when the argument has none.
func (r *Result) String(name string) string {
	v, _ := r.Value(name)
	return v
}

// FromDefault reports whether the named argument's value came from its
// declared default rather than the command line.
func (r *Result) FromDefault(name string) bool {
	sl, ok := r.slot[name]
	return ok && sl.fromDefault
}

// applyDefaults fills slots for declared defaults after the token stream is
// fully consumed and before validation, so validators observe final state.
func (r *Result) applyDefaults() {
	for _, a := range r.spec.args {
		if !a.HasDefault {
			continue
		}
		sl := r.get(a.Name)
		if sl.count == 0 && len(sl.values) == 0 {
			sl.values = append(sl.values, a.Default)
			sl.fromDefault = true
		}
	}
}
