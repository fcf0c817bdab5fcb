// Package intern provides the identifier/string interning table used by the
// tokenizer and parser, so that strings referenced by nodes remain valid
// and shared for the lifetime of the AST. An adaptive radix tree backs a
// simple insert-or-fetch table keyed by the raw UTF-8 bytes of an
// identifier or string literal.
package intern

import (
	"sync"

	art "github.com/plar/go-adaptive-radix-tree"
)

// Table interns strings so that repeated occurrences of the same identifier
// or string literal across a parse share one Go string header, and so that
// two Nodes referring to "the same" name can be compared in O(1).
type Table struct {
	mu   sync.Mutex
	tree art.Tree
}

// New creates an empty interning table.
func New() *Table {
	return &Table{tree: art.New()}
}

// Intern returns the canonical string for s: the first string ever passed to
// Intern with these bytes. The table stores s itself as the canonical
// string; it makes no copy.
func (t *Table) Intern(s string) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := art.Key(s)
	if v, found := t.tree.Search(key); found {
		return v.(string)
	}
	// Insert returns the previous value and whether an update occurred; for a
	// fresh key we simply store s itself as the canonical copy.
	t.tree.Insert(key, s)
	return s
}

// Len reports how many distinct strings have been interned.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Size()
}
