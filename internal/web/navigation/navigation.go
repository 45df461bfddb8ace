// Package navigation holds the per request navigation state: current path,
// breadcrumbs and the navbar scope used to render the page.
package navigation

import (
	"html/template"
	"strings"

	"github.com/GoPowerDNS-Admin/tailnav/navbar"
)

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	PageTitle   string
	CurrentPath string
	Breadcrumbs []BreadcrumbItem

	scope *navbar.Scope
}

// NewContext creates a new navigation context with its own navbar scope,
// so every request starts with the auto id w0.
func NewContext(pageTitle, currentPath string) *Context {
	return &Context{
		PageTitle:   pageTitle,
		CurrentPath: currentPath,
		Breadcrumbs: make([]BreadcrumbItem, 0),
		scope:       navbar.NewScope(),
	}
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// IsActive reports whether url is the current path.
func (c *Context) IsActive(url string) bool {
	return url != "" && url == c.CurrentPath
}

// NavBar returns a navbar bound to the request scope and current path.
func (c *Context) NavBar() navbar.NavBar {
	return c.scope.New().CurrentPath(c.CurrentPath)
}

// Render renders nb for use in a template.
func (c *Context) Render(nb navbar.NavBar) (template.HTML, error) {
	out, err := nb.Render()
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	return template.HTML(out), nil //nolint:gosec
}

// BreadcrumbsFrom adds the chain of items leading to the current path.
// It reports whether the current path is part of items.
func (c *Context) BreadcrumbsFrom(items []navbar.Item) bool {
	trail := Trail(items, c.CurrentPath)
	if len(trail) == 0 {
		return false
	}

	for i, item := range trail {
		c.AddBreadcrumb(plain(item), item.URL, i == len(trail)-1)
	}

	if c.PageTitle == "" {
		c.PageTitle = plain(trail[len(trail)-1])
	}

	return true
}

// Trail returns the items from the top level down to the visible item with url path.
func Trail(items []navbar.Item, path string) []navbar.Item {
	for _, item := range items {
		if item.Separator || !item.IsVisible() {
			continue
		}

		if item.URL != "" && item.URL == path {
			return []navbar.Item{item}
		}

		if sub := Trail(item.Items, path); len(sub) > 0 {
			return append([]navbar.Item{item}, sub...)
		}
	}

	return nil
}

// plain returns the label as text. Raw labels may contain markup.
func plain(item navbar.Item) string {
	if item.ShouldEncode() {
		return item.Label
	}

	return strings.TrimSpace(stripTags(item.Label))
}

func stripTags(s string) string {
	var (
		b     strings.Builder
		inTag bool
	)

	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}

	return b.String()
}
