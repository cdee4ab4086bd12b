package argot

// Builder accumulates argument, group, and subcommand declarations for one
// command level. Declarations are collected permissively and checked all at
// once by Build, so a misconfigured spec fails at construction time with a
// ConfigError rather than surfacing mid-parse.
type Builder struct {
	name        string
	description string
	args        []*Arg
	groups      []*Group
	subs        []*Builder
	subAliases  map[string][]string // canonical sub name -> aliases
}

// New starts a spec declaration for a command with the given name and
// one-line description.
func New(name, description string) *Builder {
	return &Builder{
		name:        name,
		description: description,
		subAliases:  make(map[string][]string),
	}
}

// Flag declares a boolean argument. Its long form defaults to the name.
func (b *Builder) Flag(name, help string) *ArgBuilder {
	arg := &Arg{Name: name, Help: help, Kind: KindFlag, Long: name}
	b.args = append(b.args, arg)
	return &ArgBuilder{arg: arg, parent: b}
}

// Option declares a value-taking argument. Its long form defaults to the
// name and it consumes exactly one value per occurrence unless Arity or
// ArityRange is set.
func (b *Builder) Option(name, help string) *ArgBuilder {
	arg := &Arg{Name: name, Help: help, Kind: KindOption, Long: name, MinValues: 1, MaxValues: 1}
	b.args = append(b.args, arg)
	return &ArgBuilder{arg: arg, parent: b}
}

// Positional declares an argument identified by position. Indices are
// assigned in declaration order. Call Multiple on the last positional to let
// it absorb all remaining values.
func (b *Builder) Positional(name, help string) *ArgBuilder {
	index := 0
	for _, a := range b.args {
		if a.Kind == KindPositional {
			index++
		}
	}
	arg := &Arg{Name: name, Help: help, Kind: KindPositional, Index: index}
	b.args = append(b.args, arg)
	return &ArgBuilder{arg: arg, parent: b}
}

// Group declares a relationship among previously (or later) declared
// arguments, referenced by canonical name. Membership is resolved at Build.
func (b *Builder) Group(name string, kind GroupKind, members ...string) *Builder {
	b.groups = append(b.groups, &Group{Name: name, Kind: kind, Members: members})
	return b
}

// Command declares a subcommand and returns its own Builder. The subcommand
// owns an independent spec; the parent link is wired at Build.
func (b *Builder) Command(name, description string) *Builder {
	sub := New(name, description)
	b.subs = append(b.subs, sub)
	return sub
}

// Alias registers alternative names for a previously declared subcommand.
func (b *Builder) Alias(command string, aliases ...string) *Builder {
	b.subAliases[command] = append(b.subAliases[command], aliases...)
	return b
}

// Build validates the accumulated declarations and produces the immutable
// Spec tree. It fails with a ConfigError on duplicate identities, groups
// referencing unknown arguments, or invalid positional ordering.
func (b *Builder) Build() (*Spec, error) {
	return b.build(nil)
}

func (b *Builder) build(parent *Spec) (*Spec, error) {
	s := &Spec{
		name:        b.name,
		description: b.description,
		args:        b.args,
		byName:      make(map[string]*Arg, len(b.args)),
		longs:       make(map[string]*Arg),
		shorts:      make(map[rune]*Arg),
		groups:      b.groups,
		commands:    make(map[string]*Spec, len(b.subs)),
		aliases:     make(map[string]string),
		parent:      parent,
	}

	for _, a := range b.args {
		if a.Kind != KindPositional && a.Long == "" && a.Short == 0 {
			return nil, configErrorf(ConfigDuplicateIdentity,
				"argument %q has neither a long nor a short form", a.Name)
		}
		if _, dup := s.byName[a.Name]; dup {
			return nil, configErrorf(ConfigDuplicateIdentity,
				"argument %q declared twice", a.Name)
		}
		s.byName[a.Name] = a

		if a.Kind == KindPositional {
			s.positionals = append(s.positionals, a)
			continue
		}
		if a.Long != "" {
			if prev, dup := s.longs[a.Long]; dup {
				return nil, configErrorf(ConfigDuplicateIdentity,
					"--%s declared by both %q and %q", a.Long, prev.Name, a.Name)
			}
			s.longs[a.Long] = a
		}
		if a.Short != 0 {
			if prev, dup := s.shorts[a.Short]; dup {
				return nil, configErrorf(ConfigDuplicateIdentity,
					"-%c declared by both %q and %q", a.Short, prev.Name, a.Name)
			}
			s.shorts[a.Short] = a
		}
	}

	// Unbounded arity is only meaningful for the last positional; anything
	// after it could never receive a value.
	for i, p := range s.positionals {
		if p.Multiple && i != len(s.positionals)-1 {
			return nil, configErrorf(ConfigInvalidPositionalOrdering,
				"positional <%s> absorbs all remaining values but is not declared last", p.Name)
		}
	}

	for _, g := range s.groups {
		for _, member := range g.Members {
			if _, known := s.byName[member]; !known {
				return nil, configErrorf(ConfigUnknownGroupMember,
					"group %q references undeclared argument %q", g.Name, member)
			}
		}
	}

	for _, sub := range b.subs {
		if _, dup := s.commands[sub.name]; dup {
			return nil, configErrorf(ConfigDuplicateIdentity,
				"subcommand %q declared twice", sub.name)
		}
		built, err := sub.build(s)
		if err != nil {
			return nil, err
		}
		s.commands[sub.name] = built
		s.commandNames = append(s.commandNames, sub.name)
		for _, alias := range b.subAliases[sub.name] {
			if _, dup := s.commands[alias]; dup {
				return nil, configErrorf(ConfigDuplicateIdentity,
					"subcommand alias %q collides with an existing name", alias)
			}
			s.commands[alias] = built
			s.aliases[alias] = sub.name
		}
	}

	return s, nil
}

// ArgBuilder configures a single declared argument and chains back to its
// Builder through Back.
type ArgBuilder struct {
	arg    *Arg
	parent *Builder
}

// Short sets the single-character form, matched as -c and inside clusters.
func (ab *ArgBuilder) Short(r rune) *ArgBuilder {
	ab.arg.Short = r
	return ab
}

// Long overrides the long form (flags and options default to their name).
func (ab *ArgBuilder) Long(name string) *ArgBuilder {
	ab.arg.Long = name
	return ab
}

// NoLong removes the long form, leaving a short-only argument.
func (ab *ArgBuilder) NoLong() *ArgBuilder {
	ab.arg.Long = ""
	return ab
}

// Required marks the argument as mandatory.
func (ab *ArgBuilder) Required() *ArgBuilder {
	ab.arg.Required = true
	return ab
}

// Multiple allows repeated occurrences (flags, options) or, for the last
// positional, absorbing every remaining value.
func (ab *ArgBuilder) Multiple() *ArgBuilder {
	ab.arg.Multiple = true
	return ab
}

// Hidden keeps the argument out of help output.
func (ab *ArgBuilder) Hidden() *ArgBuilder {
	ab.arg.Hidden = true
	return ab
}

// Default sets the value applied when the argument never occurs.
func (ab *ArgBuilder) Default(value string) *ArgBuilder {
	ab.arg.Default = value
	ab.arg.HasDefault = true
	return ab
}

// Values restricts acceptable values to a closed enumeration.
func (ab *ArgBuilder) Values(values ...string) *ArgBuilder {
	ab.arg.Values = values
	return ab
}

// Arity fixes how many value tokens one occurrence consumes (options only).
func (ab *ArgBuilder) Arity(n int) *ArgBuilder {
	if n < 1 {
		n = 1
	}
	ab.arg.MinValues = n
	ab.arg.MaxValues = n
	return ab
}

// ArityRange bounds how many value tokens one occurrence may consume
// (options only). Consumption is greedy up to max but stops at the next
// flag-shaped token.
func (ab *ArgBuilder) ArityRange(min, max int) *ArgBuilder {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	ab.arg.MinValues = min
	ab.arg.MaxValues = max
	return ab
}

// Back returns to the enclosing Builder for continued chaining.
func (ab *ArgBuilder) Back() *Builder {
	return ab.parent
}
