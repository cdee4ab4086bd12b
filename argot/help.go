package argot

import (
	"sort"
	"strings"
)

// Usage returns the one-line usage synopsis for the command, prefixed with
// the full parent chain so nested pages read as they would be typed.
func (s *Spec) Usage() string {
	var b strings.Builder
	b.WriteString(s.path())

	hasFlags, hasOptions := false, false
	for _, a := range s.args {
		if a.Hidden {
			continue
		}
		switch a.Kind {
		case KindFlag:
			hasFlags = true
		case KindOption:
			hasOptions = true
		}
	}
	if hasFlags {
		b.WriteString(" [FLAGS]")
	}
	if hasOptions {
		b.WriteString(" [OPTIONS]")
	}
	for _, p := range s.positionals {
		if p.Hidden {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(placeholder(p))
	}
	if len(s.commandNames) > 0 {
		b.WriteString(" [COMMAND]")
	}
	return b.String()
}

// Help renders the full help page for the command. The page is a pure
// projection of the spec: arguments appear in declaration order, hidden
// arguments are omitted, and rendering the same spec twice yields the same
// text.
func (s *Spec) Help() string {
	var b strings.Builder

	if s.description != "" {
		b.WriteString(s.description)
		b.WriteString("\n\n")
	}

	b.WriteString("Usage:\n  ")
	b.WriteString(s.Usage())
	b.WriteString("\n")

	writeArgSection(&b, "Arguments", s.args, KindPositional)
	writeArgSection(&b, "Options", s.args, KindOption)
	writeArgSection(&b, "Flags", s.args, KindFlag)
	writeCommands(&b, s)

	if len(s.commandNames) > 0 {
		b.WriteString("\nUse \"")
		b.WriteString(s.path())
		b.WriteString(" COMMAND --help\" for more information about a command.\n")
	}

	return b.String()
}

func renderHelp(s *Spec) string {
	return s.Help()
}

// path composes the command chain from the root down to this spec.
func (s *Spec) path() string {
	if s.parent == nil {
		return s.name
	}
	return s.parent.path() + " " + s.name
}

// placeholder renders a positional for the usage line: <name> when required,
// [name] otherwise, with an ellipsis when it absorbs the rest.
func placeholder(p *Arg) string {
	name := p.Name
	if p.Multiple {
		name += "..."
	}
	if p.Required {
		return "<" + name + ">"
	}
	return "[" + name + "]"
}

// left renders the identity column for one argument row.
func left(a *Arg) string {
	if a.Kind == KindPositional {
		return "<" + a.Name + ">"
	}
	var b strings.Builder
	if a.Short != 0 {
		b.WriteByte('-')
		b.WriteRune(a.Short)
		if a.Long != "" {
			b.WriteString(", ")
		}
	} else {
		b.WriteString("    ")
	}
	if a.Long != "" {
		b.WriteString("--")
		b.WriteString(a.Long)
	}
	if a.Kind == KindOption {
		b.WriteString(" <value>")
	}
	return b.String()
}

// right renders the description column, folding in default and enumeration.
func right(a *Arg) string {
	var b strings.Builder
	b.WriteString(a.Help)
	if len(a.Values) > 0 {
		b.WriteString(" [possible: ")
		b.WriteString(joinValues(a.Values))
		b.WriteString("]")
	}
	if a.HasDefault {
		b.WriteString(" (default: ")
		b.WriteString(a.Default)
		b.WriteString(")")
	}
	if a.Required {
		b.WriteString(" (required)")
	}
	return strings.TrimLeft(b.String(), " ")
}

func writeArgSection(b *strings.Builder, title string, args []*Arg, kind Kind) {
	rows := make([]*Arg, 0, len(args))
	width := 0
	for _, a := range args {
		if a.Kind != kind || a.Hidden {
			continue
		}
		rows = append(rows, a)
		if w := len(left(a)); w > width {
			width = w
		}
	}
	if len(rows) == 0 {
		return
	}

	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString(":\n")
	for _, a := range rows {
		id := left(a)
		b.WriteString("  ")
		b.WriteString(id)
		if desc := right(a); desc != "" {
			b.WriteString(strings.Repeat(" ", width-len(id)+2))
			b.WriteString(desc)
		}
		b.WriteString("\n")
	}
}

func writeCommands(b *strings.Builder, s *Spec) {
	if len(s.commandNames) == 0 {
		return
	}

	width := 0
	for _, name := range s.commandNames {
		if len(name) > width {
			width = len(name)
		}
	}

	b.WriteString("\nCommands:\n")
	for _, name := range s.commandNames {
		sub := s.commands[name]
		b.WriteString("  ")
		b.WriteString(name)
		if sub.description != "" || len(aliasesOf(s, name)) > 0 {
			b.WriteString(strings.Repeat(" ", width-len(name)+2))
			b.WriteString(sub.description)
		}
		if aliases := aliasesOf(s, name); len(aliases) > 0 {
			b.WriteString(" (aliases: ")
			b.WriteString(strings.Join(aliases, ", "))
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
}

// aliasesOf collects the aliases registered for a canonical subcommand name.
// Sorted so the page is stable across renders.
func aliasesOf(s *Spec, canonical string) []string {
	var out []string
	for alias, target := range s.aliases {
		if target == canonical {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}
