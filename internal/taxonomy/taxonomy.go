// Package taxonomy holds the static registry of field categories the
// classifier matches against. The table is loaded once at startup and
// read-only thereafter.
package taxonomy

import (
	"fmt"

	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

// FieldCategory describes one semantic field type: the keywords that signal
// it, the looser context keywords used only by the contextual strategy, the
// hand-verified per-site selectors used only by the site-specific strategy,
// and a priority weight (1-12, higher = more specific).
type FieldCategory struct {
	SiteSelectors   map[string][]string
	Category        model.Category
	Keywords        []string
	ContextKeywords []string
	Priority        int
}

// Taxonomy is the closed set of field categories.
type Taxonomy struct {
	byCategory map[model.Category]*FieldCategory
	entries    []FieldCategory
}

// New builds a taxonomy from the given entries. Category identifiers must be
// globally unique and priorities must fall in [1, 12].
func New(entries []FieldCategory) (*Taxonomy, error) {
	t := &Taxonomy{
		entries:    entries,
		byCategory: make(map[model.Category]*FieldCategory, len(entries)),
	}
	for i := range entries {
		e := &t.entries[i]
		if e.Category == "" || e.Category == model.CategoryUnknown {
			return nil, fmt.Errorf("invalid category identifier %q", e.Category)
		}
		if _, dup := t.byCategory[e.Category]; dup {
			return nil, fmt.Errorf("duplicate category %q", e.Category)
		}
		if e.Priority < 1 || e.Priority > 12 {
			return nil, fmt.Errorf("category %q priority %d out of range", e.Category, e.Priority)
		}
		t.byCategory[e.Category] = e
	}
	return t, nil
}

// Default builds the built-in taxonomy and panics on an invalid table.
// The table is a compile-time constant, so a failure here is a programming
// error, not a runtime condition.
func Default() *Taxonomy {
	t, err := New(defaultCategories())
	if err != nil {
		panic(fmt.Sprintf("invalid built-in taxonomy: %v", err))
	}
	return t
}

// All returns the categories in registration order.
func (t *Taxonomy) All() []FieldCategory {
	return t.entries
}

// Lookup returns the entry for a category, or nil if unknown.
func (t *Taxonomy) Lookup(c model.Category) *FieldCategory {
	return t.byCategory[c]
}

// Priority returns the taxonomy priority for a category, 0 if unknown.
func (t *Taxonomy) Priority(c model.Category) int {
	if e := t.byCategory[c]; e != nil {
		return e.Priority
	}
	return 0
}

// Len returns the number of categories.
func (t *Taxonomy) Len() int {
	return len(t.entries)
}
