package logic

import (
	"strings"

	"selectdrop/internal/domain"
)

// Filter returns the options of catalog that match query, in catalog order.
// An empty query returns the catalog unchanged.
func Filter(catalog domain.Catalog, query string) domain.Catalog {
	if query == "" {
		return catalog
	}

	visible := make(domain.Catalog, 0, len(catalog))
	for _, opt := range catalog {
		if MatchesFilter(opt, query) {
			visible = append(visible, opt)
		}
	}
	return visible
}

// MatchesFilter checks if an option matches the given filter query.
// Label, description and group are compared case-insensitively.
func MatchesFilter(opt domain.Option, query string) bool {
	if query == "" {
		return true
	}

	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(opt.Label), q) ||
		(opt.Description != "" && strings.Contains(strings.ToLower(opt.Description), q)) ||
		(opt.Group != "" && strings.Contains(strings.ToLower(opt.Group), q))
}

// Item is an option placed in display order
type Item struct {
	Index  int // position in display order, the space highlights live in
	Option domain.Option
}

// Section is a run of items rendered under one group header.
// Group is "" for options rendered outside any header.
type Section struct {
	Group string
	Items []Item
}

// Partition splits visible options into sections for display.
// Without groupBy everything lands in one headerless section in filter order.
// With groupBy, sections appear in order of first appearance and ungrouped
// options share one headerless section.
func Partition(visible domain.Catalog, groupBy bool) []Section {
	if len(visible) == 0 {
		return nil
	}

	if !groupBy {
		sec := Section{Items: make([]Item, len(visible))}
		for i, opt := range visible {
			sec.Items[i] = Item{Index: i, Option: opt}
		}
		return []Section{sec}
	}

	var sections []Section
	position := make(map[string]int)
	for _, opt := range visible {
		idx, ok := position[opt.Group]
		if !ok {
			idx = len(sections)
			position[opt.Group] = idx
			sections = append(sections, Section{Group: opt.Group})
		}
		sections[idx].Items = append(sections[idx].Items, Item{Option: opt})
	}

	n := 0
	for s := range sections {
		for i := range sections[s].Items {
			sections[s].Items[i].Index = n
			n++
		}
	}
	return sections
}

// Flatten returns the options of sections in display order
func Flatten(sections []Section) domain.Catalog {
	var out domain.Catalog
	for _, sec := range sections {
		for _, item := range sec.Items {
			out = append(out, item.Option)
		}
	}
	return out
}

// Arrange filters catalog and lays the result out for display.
// The returned catalog is the navigation order highlights index into.
func Arrange(catalog domain.Catalog, query string, groupBy bool) ([]Section, domain.Catalog) {
	sections := Partition(Filter(catalog, query), groupBy)
	return sections, Flatten(sections)
}
