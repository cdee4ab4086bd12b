package argot

import (
	"unicode/utf8"

	"github.com/lverre/argot/internal/pool"
)

// tokenPool recycles the per-parse token scratch. Tokens never outlive the
// Parse call that produced them.
var tokenPool = pool.NewSlicePool[token](16)

// Parse matches argv against the spec in a single left-to-right pass and
// returns the bound result. There is no backtracking: every token is resolved
// exactly once, in order, and the first violation aborts the parse.
//
// A spec is immutable after Build, so concurrent Parse calls on the same Spec
// are safe.
func (s *Spec) Parse(argv []string) (*Result, error) {
	res, perr := parseLevel(s, argv)
	if perr != nil {
		return nil, perr
	}
	return res, nil
}

// parseLevel runs the full pipeline for one command level: tokenize, match,
// apply defaults, validate, then recurse into a subcommand if one was named.
// Validation is outer to inner: a level's own violations surface before any
// token of a deeper level is even examined.
func parseLevel(s *Spec, argv []string) (*Result, *ParseError) {
	scratch := tokenPool.Get()
	tokens, perr := tokenize(s, argv, *scratch)
	defer func() {
		*scratch = tokens[:0]
		tokenPool.Put(scratch)
	}()
	if perr != nil {
		return nil, perr
	}

	res := newResult(s)
	posIdx := 0      // next positional slot to fill
	rawOnly := false // true once "--" was seen

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]

		switch t.kind {
		case tokenEndOfOptions:
			rawOnly = true

		case tokenLong:
			a := s.lookupLong(t.name)
			if a == nil {
				if t.name == "help" {
					res.help = renderHelp(s)
					return res, nil
				}
				return nil, unknownFlagError(s, t.name, t.text)
			}
			if a.takesValue() {
				values, next, perr := consumeValues(a, tokens, i)
				if perr != nil {
					return nil, perr
				}
				if perr := bindOccurrence(res, a, t.text, values); perr != nil {
					return nil, perr
				}
				i = next
			} else if perr := bindOccurrence(res, a, t.text, nil); perr != nil {
				return nil, perr
			}

		case tokenShort:
			r, _ := utf8.DecodeRuneInString(t.name)
			a := s.lookupShort(r)
			if a == nil {
				if r == 'h' {
					res.help = renderHelp(s)
					return res, nil
				}
				return nil, unknownFlagError(s, t.name, t.text)
			}
			if a.takesValue() {
				values, next, perr := consumeValues(a, tokens, i)
				if perr != nil {
					return nil, perr
				}
				if perr := bindOccurrence(res, a, t.text, values); perr != nil {
					return nil, perr
				}
				i = next
			} else if perr := bindOccurrence(res, a, t.text, nil); perr != nil {
				return nil, perr
			}

		case tokenJoined:
			a := s.lookupLong(t.name)
			if a == nil {
				if r, size := utf8.DecodeRuneInString(t.name); size == len(t.name) {
					a = s.lookupShort(r)
				}
			}
			if a == nil {
				return nil, unknownFlagError(s, t.name, t.text)
			}
			if !a.takesValue() {
				return nil, &ParseError{
					Kind:    ErrInvalidValue,
					Arg:     a.Name,
					Token:   t.text,
					Message: "flag " + a.display() + " does not take a value",
				}
			}
			// A joined form supplies exactly one value; it never pulls
			// further values from the stream.
			if a.MinValues > 1 {
				return nil, missingValueError(a, t.text)
			}
			if perr := bindOccurrence(res, a, t.text, []string{t.value}); perr != nil {
				return nil, perr
			}

		case tokenPositional, tokenBare:
			if !rawOnly {
				// The help convention is resolved before positional and
				// subcommand interpretation.
				if t.pos == 0 && t.text == "help" && len(s.commandNames) > 0 {
					return helpCommand(s, res, tokens, i)
				}
				if sub, ok := s.commands[t.text]; ok && subEligible(s, res, posIdx) {
					return descend(s, res, sub, argv, t.pos)
				}
			}
			if posIdx >= len(s.positionals) {
				return nil, unknownBareError(s, t.text)
			}
			p := s.positionals[posIdx]
			if !p.accepts(t.text) {
				return nil, invalidValueError(p, t.text)
			}
			sl := res.get(p.Name)
			sl.values = append(sl.values, t.text)
			sl.count++
			if !p.Multiple {
				posIdx++
			}
		}
	}

	res.applyDefaults()
	if perr := validate(s, res); perr != nil {
		return nil, perr
	}
	return res, nil
}

// descend finishes the current level and parses the remaining argv against
// the subcommand. The current level's defaults and validation run first, so
// an outer violation is reported even when the inner tokens are also wrong.
func descend(s *Spec, res *Result, sub *Spec, argv []string, at int) (*Result, *ParseError) {
	res.applyDefaults()
	if perr := validate(s, res); perr != nil {
		return nil, perr
	}
	subRes, perr := parseLevel(sub, argv[at+1:])
	if perr != nil {
		return nil, perr
	}
	res.sub = subRes
	return res, nil
}

// helpCommand handles the "help [name...]" form: the remaining bare tokens
// name a subcommand path, and the page for the deepest resolved level is
// rendered. An unresolvable name fails the same way an unknown subcommand
// would, with a suggestion.
func helpCommand(s *Spec, res *Result, tokens []token, i int) (*Result, *ParseError) {
	target := s
	for _, t := range tokens[i+1:] {
		if t.kind != tokenPositional && t.kind != tokenBare {
			break
		}
		sub, ok := target.Subcommand(t.text)
		if !ok {
			return nil, unknownBareError(target, t.text)
		}
		target = sub
	}
	res.help = renderHelp(target)
	return res, nil
}

// bindOccurrence records one occurrence of a in the result, enforcing the
// single-occurrence rule and the value enumeration.
func bindOccurrence(res *Result, a *Arg, text string, values []string) *ParseError {
	sl := res.get(a.Name)
	if !a.Multiple && sl.count >= 1 {
		return tooManyError(a, text)
	}
	for _, v := range values {
		if !a.accepts(v) {
			return invalidValueError(a, v)
		}
	}
	sl.count++
	sl.values = append(sl.values, values...)
	return nil
}

// consumeValues claims value tokens for an option occurrence at index i,
// greedily up to MaxValues but stopping at the first flag-shaped token. It
// returns the last consumed index so the caller can skip past them.
func consumeValues(a *Arg, tokens []token, i int) ([]string, int, *ParseError) {
	values := make([]string, 0, a.MinValues)
	j := i + 1
	for j < len(tokens) && len(values) < a.MaxValues && tokens[j].valueLike() {
		values = append(values, tokens[j].text)
		j++
	}
	if len(values) < a.MinValues {
		return nil, i, missingValueError(a, tokens[i].text)
	}
	return values, j - 1, nil
}

// subEligible reports whether a bare token may switch into a subcommand at
// this point. A required positional that has not yet reached its minimum
// still owns the token.
func subEligible(s *Spec, res *Result, posIdx int) bool {
	if posIdx >= len(s.positionals) {
		return true
	}
	p := s.positionals[posIdx]
	if !p.Required {
		return true
	}
	return p.Multiple && res.Count(p.Name) > 0
}
