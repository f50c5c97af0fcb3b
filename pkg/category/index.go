// Package category maps item identifiers to category labels. The index is
// built once and never mutated, so lookups need no locking.
package category

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Index is an immutable item -> category mapping used to scope queries.
type Index struct {
	byItem     map[string]string
	byCategory map[string][]string
}

// NewIndex builds an index from an item -> category table. The table is
// copied, so later mutation of the argument does not affect the index.
func NewIndex(assignments map[string]string) *Index {
	idx := &Index{
		byItem:     make(map[string]string, len(assignments)),
		byCategory: make(map[string][]string),
	}
	for item, cat := range assignments {
		idx.byItem[item] = cat
		idx.byCategory[cat] = append(idx.byCategory[cat], item)
	}
	for _, items := range idx.byCategory {
		sort.Strings(items)
	}
	return idx
}

// categoryFile is the on-disk shape: category -> list of items.
type categoryFile map[string][]string

// LoadFile builds an index from a YAML file mapping each category to its
// items. An item assigned to two categories is a configuration error.
func LoadFile(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read category file: %w", err)
	}

	var file categoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse category file %s: %w", path, err)
	}

	assignments := make(map[string]string)
	for cat, items := range file {
		for _, item := range items {
			if prev, dup := assignments[item]; dup && prev != cat {
				return nil, fmt.Errorf("item %q assigned to both %q and %q", item, prev, cat)
			}
			assignments[item] = cat
		}
	}
	return NewIndex(assignments), nil
}

// Category returns the item's category label. The second return is false for
// unmapped items, which category-scoped queries simply skip.
func (idx *Index) Category(item string) (string, bool) {
	cat, ok := idx.byItem[item]
	return cat, ok
}

// Items returns the items of a category in lexicographic order. Unknown
// categories get an empty slice.
func (idx *Index) Items(category string) []string {
	items := idx.byCategory[category]
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// Known reports whether any item maps to the category. It lets callers
// distinguish "unknown category" from "category with no co-purchase edges",
// which the filter query alone cannot.
func (idx *Index) Known(category string) bool {
	return len(idx.byCategory[category]) > 0
}

// Categories returns every category label in lexicographic order.
func (idx *Index) Categories() []string {
	cats := make([]string, 0, len(idx.byCategory))
	for cat := range idx.byCategory {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

// Len returns the number of mapped items.
func (idx *Index) Len() int {
	return len(idx.byItem)
}
