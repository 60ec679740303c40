package view

import (
	"strings"

	"content_studio/internal/i18n"
)

type NavItem struct {
	Path   string
	Label  string
	Active bool
}

// Nav builds the sidebar for the page at current.
func Nav(l *i18n.Localizer, current string, withActivity bool) []NavItem {
	items := []NavItem{
		{Path: "/", Label: l.T("nav.projects")},
		{Path: "/characters", Label: l.T("nav.characters")},
		{Path: "/targets", Label: l.T("nav.targets")},
		{Path: "/settings", Label: l.T("nav.settings")},
	}
	if withActivity {
		items = append(items, NavItem{Path: "/activity", Label: l.T("nav.activity")})
	}

	for i := range items {
		items[i].Active = isActive(items[i].Path, current)
	}
	return items
}

func isActive(path, current string) bool {
	if path == "/" {
		return current == "/" || strings.HasPrefix(current, "/projects")
	}
	return current == path || strings.HasPrefix(current, path+"/")
}
