package argot

import (
	"fmt"

	"github.com/lverre/argot/internal/fuzzy"
)

// ErrorKind categorizes parse-time failures. Every kind is terminal to the
// current parse; the engine never returns a partial binding alongside one.
type ErrorKind string

const (
	ErrMalformedToken        ErrorKind = "malformed_token"
	ErrUnknownArgument       ErrorKind = "unknown_argument"
	ErrMissingValue          ErrorKind = "missing_value"
	ErrTooManyOccurrences    ErrorKind = "too_many_occurrences"
	ErrInvalidValue          ErrorKind = "invalid_value"
	ErrMissingRequired       ErrorKind = "missing_required"
	ErrConflictingArguments  ErrorKind = "conflicting_arguments"
	ErrGroupRequirementUnmet ErrorKind = "group_requirement_unmet"
)

// ParseError is the single failure value returned by Parse. It carries the
// offending argument identity or raw token text, the violated rule, and (for
// unknown arguments) the nearest declared identity by edit distance.
type ParseError struct {
	Kind       ErrorKind
	Arg        string // declared identity involved, if resolved
	Token      string // raw token text as it appeared in argv
	Group      string // group name, for group violations
	Suggestion string // nearest known identity, unknown-argument errors only
	Message    string
}

func (e *ParseError) Error() string {
	return e.Message
}

// maxSuggestDistance bounds how far a typo may be from a declared identity
// before we stop suggesting anything at all.
const maxSuggestDistance = 2

// unknownFlagError builds an ErrUnknownArgument for a dashed token, looking
// for the closest declared long or short form. Suggestions are computed only
// here, on the error path, so the success path never pays for them.
func unknownFlagError(s *Spec, name, text string) *ParseError {
	candidates := make([]string, 0, len(s.args))
	for _, a := range s.args {
		if a.Kind == KindPositional {
			continue
		}
		if a.Long != "" {
			candidates = append(candidates, a.Long)
		}
	}
	suggestion := fuzzy.Closest(name, candidates, maxSuggestDistance)
	msg := "unknown flag: " + text
	if suggestion != "" {
		msg += " (did you mean '--" + suggestion + "'?)"
	}
	return &ParseError{
		Kind:       ErrUnknownArgument,
		Token:      text,
		Suggestion: suggestion,
		Message:    msg,
	}
}

// unknownBareError builds an ErrUnknownArgument for a bare token that matched
// neither a pending positional nor a subcommand name.
func unknownBareError(s *Spec, text string) *ParseError {
	candidates := make([]string, 0, len(s.commandNames))
	candidates = append(candidates, s.commandNames...)
	suggestion := fuzzy.Closest(text, candidates, maxSuggestDistance)
	msg := "unexpected argument: " + text
	if suggestion != "" {
		msg += " (did you mean '" + suggestion + "'?)"
	}
	return &ParseError{
		Kind:       ErrUnknownArgument,
		Token:      text,
		Suggestion: suggestion,
		Message:    msg,
	}
}

func missingValueError(a *Arg, text string) *ParseError {
	return &ParseError{
		Kind:    ErrMissingValue,
		Arg:     a.Name,
		Token:   text,
		Message: fmt.Sprintf("option %s requires a value", a.display()),
	}
}

func tooManyError(a *Arg, text string) *ParseError {
	return &ParseError{
		Kind:    ErrTooManyOccurrences,
		Arg:     a.Name,
		Token:   text,
		Message: fmt.Sprintf("argument %s may only be given once", a.display()),
	}
}

func invalidValueError(a *Arg, value string) *ParseError {
	return &ParseError{
		Kind:    ErrInvalidValue,
		Arg:     a.Name,
		Token:   value,
		Message: fmt.Sprintf("invalid value %q for %s (valid values: %s)", value, a.display(), joinValues(a.Values)),
	}
}

func joinValues(values []string) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ", "
		}
		out += v
	}
	return out
}

// ConfigErrorKind categorizes construction-time failures of a Spec. These
// are programmer errors surfaced by Build, never by Parse.
type ConfigErrorKind string

const (
	ConfigDuplicateIdentity         ConfigErrorKind = "duplicate_identity"
	ConfigUnknownGroupMember        ConfigErrorKind = "unknown_group_member"
	ConfigInvalidPositionalOrdering ConfigErrorKind = "invalid_positional_ordering"
)

// ConfigError reports an invalid Spec declaration.
type ConfigError struct {
	Kind   ConfigErrorKind
	Detail string
}

func (e *ConfigError) Error() string {
	return string(e.Kind) + ": " + e.Detail
}

func configErrorf(kind ConfigErrorKind, format string, args ...any) *ConfigError {
	return &ConfigError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
