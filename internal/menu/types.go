package menu

// SidebarItem is either a *SidebarLink or a *SidebarGroup.
type SidebarItem interface {
	Label() string
	sidebarItem()
}

// SidebarLink is a leaf sidebar entry pointing at a rendered document.
type SidebarLink struct {
	Text string `json:"text" yaml:"text"`
	Link string `json:"link" yaml:"link"`
}

// SidebarGroup is a collapsible sidebar entry built from a directory
// without an index document.
type SidebarGroup struct {
	Text      string        `json:"text" yaml:"text"`
	Collapsed bool          `json:"collapsed" yaml:"collapsed"`
	Items     []SidebarItem `json:"items" yaml:"items"`
}

func (l *SidebarLink) Label() string  { return l.Text }
func (g *SidebarGroup) Label() string { return g.Text }
func (*SidebarLink) sidebarItem()     {}
func (*SidebarGroup) sidebarItem()    {}

// Section is the sidebar of one directory that has an index document.
type Section struct {
	Key   string // Root-relative directory link, ending in "/"
	Title string // Title of the index document
	Items []SidebarItem
}

// Sidebar maps section keys to their ordered items. A nil Sidebar means no
// section was found.
type Sidebar map[string][]SidebarItem

// NavEntry is either a *NavLink or a *NavDropdown.
type NavEntry interface {
	Label() string
	navEntry()
}

// NavLink points at a directory landing page or a document.
type NavLink struct {
	Text        string `json:"text" yaml:"text"`
	Link        string `json:"link" yaml:"link"`
	ActiveMatch string `json:"activeMatch,omitempty" yaml:"activeMatch,omitempty"`
}

// NavDropdown aggregates links found below a directory without an index document.
type NavDropdown struct {
	Text  string          `json:"text" yaml:"text"`
	Items []NavChildGroup `json:"items" yaml:"items"`
}

// NavChildGroup is one block of links inside a dropdown. Groups below the
// top level carry a breadcrumb title.
type NavChildGroup struct {
	Text  string     `json:"text,omitempty" yaml:"text,omitempty"`
	Items []*NavLink `json:"items" yaml:"items"`
}

func (l *NavLink) Label() string     { return l.Text }
func (d *NavDropdown) Label() string { return d.Text }
func (*NavLink) navEntry()           {}
func (*NavDropdown) navEntry()       {}

// Result is the output of one build.
type Result struct {
	BuildID string     `json:"-" yaml:"-"`
	Nav     []NavEntry `json:"nav,omitempty" yaml:"nav,omitempty"`
	Sidebar Sidebar    `json:"sidebar,omitempty" yaml:"sidebar,omitempty"`
}
