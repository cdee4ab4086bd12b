package argot

import (
	"strings"

	"github.com/lverre/argot/internal/intern"
)

// tokenKind classifies one unit of the canonical token stream.
type tokenKind uint8

const (
	tokenShort tokenKind = iota
	tokenLong
	tokenJoined // --name=value, or -nVALUE when n takes a value
	tokenPositional
	tokenEndOfOptions
	tokenBare
)

// token is a transient classified unit. Tokens are produced per parse
// invocation and consumed exactly once by the matcher.
type token struct {
	kind  tokenKind
	name  string // flag identity without dashes
	value string // joined value for tokenJoined
	text  string // original argv string, for diagnostics
	pos   int    // index into argv
}

// valueLike reports whether the token may serve as an option value. Flag
// shapes never do; an option followed by a flag token is missing its value.
func (t token) valueLike() bool {
	switch t.kind {
	case tokenPositional, tokenBare:
		return true
	default:
		return false
	}
}

// tokenize splits argv into the canonical token stream for one spec level,
// applying the rules left to right with no lookahead beyond the current
// string: short-flag clusters expand until the first value-taking flag
// (whose remainder becomes the value), --name=value splits at the first '=',
// and a literal "--" downgrades everything after it to positional text.
// Unknown dashed strings pass through as flag tokens; diagnosing them is the
// matcher's job, which knows the full identity set and can suggest.
func tokenize(s *Spec, argv []string, buf []token) ([]token, *ParseError) {
	tokens := buf

	// Remaining bounded positional slots; -1 once an unbounded positional
	// can absorb everything.
	expect := 0
	for _, p := range s.positionals {
		if p.Multiple {
			expect = -1
			break
		}
		expect++
	}

	afterEnd := false
	for i, raw := range argv {
		if afterEnd {
			tokens = append(tokens, classifyBare(raw, i, &expect))
			continue
		}

		switch {
		case raw == "--":
			tokens = append(tokens, token{kind: tokenEndOfOptions, text: raw, pos: i})
			afterEnd = true

		case len(raw) > 2 && raw[0] == '-' && raw[1] == '-':
			body := raw[2:]
			if eq := strings.IndexByte(body, '='); eq >= 0 {
				name := body[:eq]
				if name == "" {
					return nil, &ParseError{
						Kind:    ErrMalformedToken,
						Token:   raw,
						Message: "malformed token: " + raw,
					}
				}
				tokens = append(tokens, token{
					kind:  tokenJoined,
					name:  intern.String(name),
					value: body[eq+1:],
					text:  raw,
					pos:   i,
				})
			} else {
				tokens = append(tokens, token{kind: tokenLong, name: intern.String(body), text: raw, pos: i})
			}

		case len(raw) > 1 && raw[0] == '-':
			tokens = appendCluster(tokens, s, raw, i)

		default:
			// Includes the bare "-" stdin convention and the empty string,
			// which is a legitimate value and never flag-shaped.
			tokens = append(tokens, classifyBare(raw, i, &expect))
		}
	}

	return tokens, nil
}

// appendCluster expands a single-dash string. Booleans and undeclared
// characters cluster freely; the first value-taking flag ends the cluster
// and claims the remainder as its joined value (so -n5 means -n 5).
func appendCluster(tokens []token, s *Spec, raw string, pos int) []token {
	body := raw[1:]
	for idx, r := range body {
		a := s.lookupShort(r)
		if a != nil && a.takesValue() {
			rest := body[idx+len(string(r)):]
			if rest != "" {
				return append(tokens, token{
					kind:  tokenJoined,
					name:  intern.Char(r),
					value: rest,
					text:  raw,
					pos:   pos,
				})
			}
			return append(tokens, token{kind: tokenShort, name: intern.Char(r), text: raw, pos: pos})
		}
		tokens = append(tokens, token{kind: tokenShort, name: intern.Char(r), text: raw, pos: pos})
	}
	return tokens
}

// classifyBare labels a non-flag string as Positional while the spec still
// expects positional values, else Bare (a candidate subcommand name, left to
// the matcher to resolve).
func classifyBare(raw string, pos int, expect *int) token {
	if *expect != 0 {
		if *expect > 0 {
			*expect--
		}
		return token{kind: tokenPositional, text: raw, pos: pos}
	}
	return token{kind: tokenBare, text: raw, pos: pos}
}
