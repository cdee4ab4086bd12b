package argot

import "fmt"

// validate runs the post-match checks for one level in a fixed order:
// missing required arguments first, then conflict groups, then requires
// groups, then one-required groups. The order is part of the contract; the
// same bad command line always produces the same error.
//
// Presence for group purposes means at least one occurrence on the command
// line; a value filled in from a default never triggers a group. A required
// argument, though, is satisfied by its declared default.
func validate(s *Spec, res *Result) *ParseError {
	for _, a := range s.args {
		if a.Required && res.Count(a.Name) == 0 && !a.HasDefault {
			return &ParseError{
				Kind:    ErrMissingRequired,
				Arg:     a.Name,
				Message: "missing required argument: " + a.display(),
			}
		}
	}

	for _, g := range s.groups {
		if g.Kind != GroupConflict {
			continue
		}
		present := presentMembers(s, res, g)
		if len(present) >= 2 {
			return &ParseError{
				Kind:  ErrConflictingArguments,
				Arg:   present[0].Name,
				Group: g.Name,
				Message: fmt.Sprintf("arguments %s and %s cannot be used together",
					present[0].display(), present[1].display()),
			}
		}
	}

	// Requires groups are directional: the first member triggers, the rest
	// must then be present too.
	for _, g := range s.groups {
		if g.Kind != GroupRequires || len(g.Members) < 2 {
			continue
		}
		trigger := s.byName[g.Members[0]]
		if res.Count(trigger.Name) == 0 {
			continue
		}
		for _, name := range g.Members[1:] {
			if res.Count(name) == 0 {
				return &ParseError{
					Kind:  ErrGroupRequirementUnmet,
					Arg:   trigger.Name,
					Group: g.Name,
					Message: fmt.Sprintf("argument %s requires %s",
						trigger.display(), s.byName[name].display()),
				}
			}
		}
	}

	for _, g := range s.groups {
		if g.Kind != GroupOneRequired {
			continue
		}
		if len(presentMembers(s, res, g)) == 0 {
			return &ParseError{
				Kind:    ErrGroupRequirementUnmet,
				Group:   g.Name,
				Message: "one of " + memberList(s, g) + " is required",
			}
		}
	}

	return nil
}

// presentMembers returns the group's occurring members in member declaration
// order, so conflict messages are stable regardless of command-line order.
func presentMembers(s *Spec, res *Result, g *Group) []*Arg {
	var present []*Arg
	for _, name := range g.Members {
		if res.Count(name) > 0 {
			present = append(present, s.byName[name])
		}
	}
	return present
}

func memberList(s *Spec, g *Group) string {
	out := ""
	for i, name := range g.Members {
		if i > 0 {
			out += ", "
		}
		out += s.byName[name].display()
	}
	return out
}
