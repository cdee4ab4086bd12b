// Package intern canonicalizes the small, highly repetitive strings the
// tokenizer produces: long-flag identities and single-character short-flag
// names. Interning keeps repeated parses of the same spec from re-allocating
// identical name strings.
package intern

import "sync"

// Table is a thread-safe string interner.
type Table struct {
	mu      sync.RWMutex
	strings map[string]string
}

// NewTable creates an interner with the given initial capacity.
func NewTable(capacity int) *Table {
	if capacity <= 0 {
		capacity = 64
	}
	return &Table{strings: make(map[string]string, capacity)}
}

// Intern returns the canonical copy of s, storing it on first sight.
func (t *Table) Intern(s string) string {
	t.mu.RLock()
	if canonical, ok := t.strings[s]; ok {
		t.mu.RUnlock()
		return canonical
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if canonical, ok := t.strings[s]; ok {
		return canonical
	}
	t.strings[s] = s
	return s
}

// Preload seeds the table with strings known ahead of time.
func (t *Table) Preload(values []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, v := range values {
		t.strings[v] = v
	}
}

// Len reports how many strings are interned, for tests and monitoring.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.strings)
}

// Single ASCII characters get a static table so short-flag names never touch
// the map at all. a-z (0-25), A-Z (26-51), 0-9 (52-61).
var charStrings = [62]string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}

// Char returns the canonical one-character string for r.
func Char(r rune) string {
	switch {
	case r >= 'a' && r <= 'z':
		return charStrings[r-'a']
	case r >= 'A' && r <= 'Z':
		return charStrings[26+r-'A']
	case r >= '0' && r <= '9':
		return charStrings[52+r-'0']
	default:
		return global.Intern(string(r))
	}
}

// common holds identities that show up in virtually every CLI spec, so they
// are canonical from process start.
var common = []string{
	"help", "version", "verbose", "quiet", "debug", "force",
	"config", "output", "input", "file", "name", "target",
}

var global = func() *Table {
	t := NewTable(128)
	t.Preload(common)
	return t
}()

// String interns s in the process-wide table.
func String(s string) string {
	return global.Intern(s)
}
