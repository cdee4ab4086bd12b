package argot

// Kind distinguishes the three argument shapes the engine knows about.
type Kind int

const (
	// KindFlag is a zero-arity boolean argument; presence alone is the signal.
	KindFlag Kind = iota
	// KindOption takes one or more values per occurrence.
	KindOption
	// KindPositional is identified by position rather than name.
	KindPositional
)

// GroupKind distinguishes the declared relationships among a set of arguments.
type GroupKind int

const (
	// GroupConflict members are mutually exclusive.
	GroupConflict GroupKind = iota
	// GroupRequires is directional: when the first member is present, every
	// remaining member must be present too.
	GroupRequires
	// GroupOneRequired demands at least one member be present.
	GroupOneRequired
)

// Arg is the immutable description of one declared argument. Fields are
// exported for help rendering and introspection; mutate only through the
// builder, never after Build.
type Arg struct {
	Name     string // canonical identity, unique within its Spec
	Help     string
	Kind     Kind
	Long     string // long form, matched as --Long
	Short    rune   // short form, matched as -S; 0 means none
	Required bool
	Multiple bool // may occur more than once / absorb more than one value
	Hidden   bool // parsed normally but omitted from help output

	// Default is applied to the binding when the argument has zero
	// occurrences. HasDefault distinguishes "no default" from "".
	Default    string
	HasDefault bool

	// Values is an optional closed enumeration of acceptable values.
	Values []string

	// MinValues/MaxValues bound how many value tokens one occurrence of an
	// option consumes. Both default to 1. Ignored for flags; positionals use
	// Multiple instead.
	MinValues int
	MaxValues int

	// Index is the declaration position among sibling positionals.
	Index int
}

// display returns the identity as a user would type it, for diagnostics.
func (a *Arg) display() string {
	switch {
	case a.Kind == KindPositional:
		return "<" + a.Name + ">"
	case a.Long != "":
		return "--" + a.Long
	default:
		return "-" + string(a.Short)
	}
}

// takesValue reports whether an occurrence of the argument consumes value
// tokens. The tokenizer uses this to stop short-flag clustering.
func (a *Arg) takesValue() bool {
	return a.Kind == KindOption
}

// accepts reports whether v satisfies the argument's closed enumeration.
func (a *Arg) accepts(v string) bool {
	if len(a.Values) == 0 {
		return true
	}
	for _, allowed := range a.Values {
		if v == allowed {
			return true
		}
	}
	return false
}

// Group is a declared relationship among arguments, referenced by their
// canonical identities.
type Group struct {
	Name    string
	Kind    GroupKind
	Members []string
}

// Spec is the validated, immutable description of one command level: its
// arguments, groups, and subcommands. A Spec is built once via Builder.Build
// and is safe to share across concurrent Parse calls; no phase mutates it.
type Spec struct {
	name        string
	description string

	args        []*Arg // declaration order, all kinds
	byName      map[string]*Arg
	longs       map[string]*Arg
	shorts      map[rune]*Arg
	positionals []*Arg // ascending Index

	groups []*Group

	commands     map[string]*Spec  // canonical names and aliases
	commandNames []string          // canonical names, declaration order
	aliases      map[string]string // alias -> canonical name

	// parent is a non-owning back-reference used only to compose the usage
	// prefix for nested help; matching never traverses it.
	parent *Spec
}

// Name returns the command name this spec was declared with.
func (s *Spec) Name() string { return s.name }

// Description returns the one-line description for help output.
func (s *Spec) Description() string { return s.description }

// Args returns the declared arguments in declaration order. The returned
// slice is shared; callers must not modify it.
func (s *Spec) Args() []*Arg { return s.args }

// Lookup resolves a canonical identity to its Arg.
func (s *Spec) Lookup(name string) (*Arg, bool) {
	a, ok := s.byName[name]
	return a, ok
}

// Subcommand resolves a subcommand name or alias.
func (s *Spec) Subcommand(name string) (*Spec, bool) {
	sub, ok := s.commands[name]
	return sub, ok
}

// lookupLong resolves a --long identity, nil when undeclared.
func (s *Spec) lookupLong(name string) *Arg {
	return s.longs[name]
}

// lookupShort resolves a -s identity, nil when undeclared.
func (s *Spec) lookupShort(r rune) *Arg {
	return s.shorts[r]
}

// hasUnboundedPositional reports whether the last positional absorbs an
// unbounded number of values.
func (s *Spec) hasUnboundedPositional() bool {
	n := len(s.positionals)
	return n > 0 && s.positionals[n-1].Multiple
}
