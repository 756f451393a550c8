package menu

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/docs"
)

type navBuilder struct {
	walker    *docs.Walker
	sorter    *Sorter
	opts      Options
	documents int
}

// entries builds the top navigation from the root's subdirectories.
func (b *navBuilder) entries() ([]NavEntry, error) {
	var entries []NavEntry
	err := b.walker.Walk(docs.Root, func(dir string) error {
		hasIndex, err := b.walker.HasFile(dir, b.opts.IndexFile)
		if err != nil {
			return err
		}
		if hasIndex {
			link := docs.DirLink(dir)
			entries = append(entries, &NavLink{Text: path.Base(dir), Link: link, ActiveMatch: link})
			return nil
		}
		groups, err := b.children(dir)
		if err != nil {
			return err
		}
		if len(groups) > 0 {
			entries = append(entries, &NavDropdown{Text: path.Base(dir), Items: groups})
		}
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	b.sorter.SortNav(entries)
	return entries, nil
}

// children harvests the links below a directory without an index document.
// Documents and indexed subdirectories of dir form one group; subdirectories
// without an index contribute their own groups.
func (b *navBuilder) children(dir string) ([]NavChildGroup, error) {
	var (
		current []*NavLink
		groups  []NavChildGroup
	)

	err := b.walker.Walk(dir,
		func(sub string) error {
			hasIndex, err := b.walker.HasFile(sub, b.opts.IndexFile)
			if err != nil {
				return err
			}
			if hasIndex {
				link := docs.DirLink(sub)
				current = append(current, &NavLink{Text: path.Base(sub), Link: link, ActiveMatch: link})
				return nil
			}
			nested, err := b.children(sub)
			if err != nil {
				return err
			}
			groups = append(groups, nested...)
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
			current = append(current, &NavLink{Text: doc.Title, Link: doc.Link})
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	if len(current) > 0 {
		SortLinks(current)
		group := NavChildGroup{Items: current}
		if key := docs.DirLink(dir); docs.Depth(key) > 1 {
			group.Text = Breadcrumb(key, b.opts.BreadcrumbSeparator)
		}
		groups = append(groups, group)
	}
	b.sorter.SortGroups(groups)
	return groups, nil
}

// Breadcrumb titles a dropdown group after its directory link: the first
// segment is dropped because the dropdown already names it, the remaining
// segments are joined with sep.
//
//	Breadcrumb("/guide/advanced/plugins/", " » ") == "advanced » plugins"
func Breadcrumb(link, sep string) string {
	trimmed := strings.Trim(link, "/")
	if i := strings.Index(trimmed, "/"); i >= 0 {
		trimmed = trimmed[i+1:]
	} else {
		trimmed = ""
	}
	return strings.ReplaceAll(trimmed, "/", sep)
}
