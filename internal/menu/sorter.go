package menu

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is the collation used for display text.
var DefaultLocale = language.Chinese

// Sorter holds the ordering rules shared by the sidebar and navigation
// builders. A Sorter wraps a collator and is not safe for concurrent use.
type Sorter struct {
	col *collate.Collator
}

// NewSorter returns a Sorter collating text for tag.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{col: collate.New(tag)}
}

// CompareText orders display text by locale collation. An empty value on
// either side compares equal so stable sorts keep the input order.
func (s *Sorter) CompareText(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	return s.col.CompareString(a, b)
}

// CompareLink orders links lexicographically. An empty value on either side
// compares equal.
func CompareLink(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	return strings.Compare(a, b)
}

// SortSidebar puts groups before links, groups by text and links by link.
func (s *Sorter) SortSidebar(items []SidebarItem) {
	slices.SortStableFunc(items, func(a, b SidebarItem) int {
		ga, aGroup := a.(*SidebarGroup)
		gb, bGroup := b.(*SidebarGroup)
		switch {
		case aGroup && !bGroup:
			return -1
		case !aGroup && bGroup:
			return 1
		case aGroup:
			return s.CompareText(ga.Text, gb.Text)
		}
		return CompareLink(a.(*SidebarLink).Link, b.(*SidebarLink).Link)
	})
}

// SortLinks orders navigation links by link.
func SortLinks(links []*NavLink) {
	slices.SortStableFunc(links, func(a, b *NavLink) int {
		return CompareLink(a.Link, b.Link)
	})
}

// SortGroups puts untitled groups first, then titled groups by title.
func (s *Sorter) SortGroups(groups []NavChildGroup) {
	slices.SortStableFunc(groups, func(a, b NavChildGroup) int {
		switch {
		case a.Text == "" && b.Text == "":
			return 0
		case a.Text == "":
			return -1
		case b.Text == "":
			return 1
		}
		return s.CompareText(a.Text, b.Text)
	})
}

// SortNav puts direct links first by link, then dropdowns by text.
func (s *Sorter) SortNav(entries []NavEntry) {
	slices.SortStableFunc(entries, func(a, b NavEntry) int {
		la, aLink := a.(*NavLink)
		lb, bLink := b.(*NavLink)
		switch {
		case aLink && !bLink:
			return -1
		case !aLink && bLink:
			return 1
		case aLink:
			return CompareLink(la.Link, lb.Link)
		}
		return s.CompareText(a.Label(), b.Label())
	})
}
