// Package intern provides string interning for option names. Registered
// aliases and combined short flags share canonical copies, so names held by
// the registry never pin the caller's token buffers.
package intern

import "sync"

// Table is a thread-safe set of canonical strings.
type Table struct {
	strings map[string]string
	mutex   sync.RWMutex
}

// NewTable creates a table with optional pre-allocated capacity
func NewTable(capacity int) *Table {
	if capacity <= 0 {
		capacity = 64
	}
	return &Table{
		strings: make(map[string]string, capacity),
	}
}

// Intern returns the canonical copy of s.
func (t *Table) Intern(s string) string {
	t.mutex.RLock()
	if interned, exists := t.strings[s]; exists {
		t.mutex.RUnlock()
		return interned
	}
	t.mutex.RUnlock()

	t.mutex.Lock()
	defer t.mutex.Unlock()

	// Double-check after acquiring write lock
	if interned, exists := t.strings[s]; exists {
		return interned
	}

	// Clone so the table never pins a larger backing array (e.g. "name=value")
	owned := string(append([]byte(nil), s...))
	t.strings[owned] = owned
	return owned
}

// Len returns the number of interned strings.
func (t *Table) Len() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return len(t.strings)
}

// Reset removes all interned strings (useful for testing)
func (t *Table) Reset() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	clear(t.strings)
}

// shortNames holds every character accepted inside a combined short flag:
// a-z (0-25), A-Z (26-51), 0-9 (52-61), '?' (62)
var shortNames = [63]string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "?",
}

// Short returns the single-character option name for c.
// Characters outside the short-flag alphabet go through the global table.
func Short(c byte) string {
	switch {
	case c >= 'a' && c <= 'z':
		return shortNames[c-'a']
	case c >= 'A' && c <= 'Z':
		return shortNames[26+c-'A']
	case c >= '0' && c <= '9':
		return shortNames[52+c-'0']
	case c == '?':
		return shortNames[62]
	}
	return global.Intern(string(rune(c)))
}

var global = NewTable(128)

// Name interns an option name in the process-wide table.
func Name(s string) string {
	return global.Intern(s)
}
