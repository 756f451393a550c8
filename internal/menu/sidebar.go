package menu

import (
	"path"
	"slices"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/docs"
)

type sidebarBuilder struct {
	walker    *docs.Walker
	sorter    *Sorter
	opts      Options
	indexLink string
	documents int
}

// parse turns dir into a sidebar group for its parent, or into a section
// when it holds an index document. Sections found below dir are returned
// alongside so the caller merges them.
func (b *sidebarBuilder) parse(dir string) (*SidebarGroup, []Section, error) {
	var (
		items    []SidebarItem
		sections []Section
		index    *SidebarLink
	)

	err := b.walker.Walk(dir,
		func(sub string) error {
			group, nested, err := b.parse(sub)
			if err != nil {
				return err
			}
			sections = append(sections, nested...)
			if group != nil && len(group.Items) > 0 {
				items = append(items, group)
			}
			return nil
		},
		func(p string) error {
			if !docs.IsMarkdown(p) {
				return nil
			}
			doc, err := b.walker.ReadDocument(p)
			if err != nil {
				return err
			}
			b.documents++
			link := &SidebarLink{Text: doc.Title, Link: doc.Link}
			if index == nil && strings.HasSuffix(doc.Link, b.indexLink) {
				index = link
			}
			items = append(items, link)
			return nil
		},
	)
	if err != nil {
		return nil, nil, err
	}

	b.sorter.SortSidebar(items)
	key := docs.DirLink(dir)

	if index != nil {
		items = slices.DeleteFunc(items, func(it SidebarItem) bool {
			l, ok := it.(*SidebarLink)
			return ok && l == index
		})
		// An index document alone does not make a sidebar.
		if len(items) > 0 {
			sections = append(sections, Section{Key: key, Title: index.Text, Items: items})
		}
		return nil, sections, nil
	}

	return &SidebarGroup{
		Text:      path.Base(dir),
		Collapsed: docs.Depth(key) > b.opts.CollapseDepth,
		Items:     items,
	}, sections, nil
}
