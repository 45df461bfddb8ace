// Package navbar renders a responsive Tailwind navigation bar.
//
// A NavBar is configured through setters which return an updated copy, so a
// configured value can be reused as a template:
//
//	nb := navbar.New().BrandText("My Project").Items(items)
//	out, err := nb.CurrentPath("/about").Begin()
//	...
//	tail, err := navbar.End()
//
// Begin renders the opening markup and registers the navbar in its Scope,
// End renders the collapsible item list and closes all tags. Use a Scope per
// request when rendering concurrently.
package navbar

import (
	"github.com/GoPowerDNS-Admin/tailnav/tag"
)

// NavBar holds the configuration of a single navbar.
type NavBar struct {
	scope *Scope
	err   error

	id          string
	attributes  tag.Attributes
	color       Color
	currentPath string

	brand                string
	brandText            string
	brandTextRaw         bool
	brandTextAttributes  tag.Attributes
	brandImage           string
	brandImageAttributes tag.Attributes
	brandLink            string

	containerAttributes      tag.Attributes
	containerItemsAttributes tag.Attributes
	toggleAttributes         tag.Attributes

	items            []Item
	loadDefaultTheme bool
	activateItems    bool
}

// ID sets the id prefix. Without it an auto id like "w0" is used.
func (n NavBar) ID(id string) NavBar {
	n.id = id
	return n
}

// Attributes sets the attributes of the nav tag.
func (n NavBar) Attributes(attrs tag.Attributes) NavBar {
	n.attributes = attrs.Clone()
	return n
}

// BackgroundColorTheme sets the background color. It accepts the class
// (BgAmber) or the short name ("amber"). An invalid color is returned by Begin.
func (n NavBar) BackgroundColorTheme(color Color) NavBar {
	c, err := ParseColor(string(color))
	if err != nil {
		n.err = err
		return n
	}

	n.color = c
	n.err = nil

	return n
}

// Err returns the configuration error recorded by a setter, if any.
func (n NavBar) Err() error {
	return n.err
}

// Brand sets brand markup which replaces the whole brand block. It is not escaped.
func (n NavBar) Brand(html string) NavBar {
	n.brand = html
	return n
}

// BrandText sets the brand text. It is escaped.
func (n NavBar) BrandText(text string) NavBar {
	n.brandText = text
	n.brandTextRaw = false

	return n
}

// BrandTextRaw sets brand text which is rendered without escaping.
func (n NavBar) BrandTextRaw(html string) NavBar {
	n.brandText = html
	n.brandTextRaw = true

	return n
}

// BrandTextAttributes sets the attributes of the brand text tag.
func (n NavBar) BrandTextAttributes(attrs tag.Attributes) NavBar {
	n.brandTextAttributes = attrs.Clone()
	return n
}

// BrandImage sets the url of the brand image.
func (n NavBar) BrandImage(src string) NavBar {
	n.brandImage = src
	return n
}

// BrandImageAttributes sets the attributes of the brand image tag.
func (n NavBar) BrandImageAttributes(attrs tag.Attributes) NavBar {
	n.brandImageAttributes = attrs.Clone()
	return n
}

// BrandLink sets the brand text link. An empty link renders the text in a span.
func (n NavBar) BrandLink(url string) NavBar {
	n.brandLink = url
	return n
}

// ContainerAttributes sets the attributes of the inner container div.
func (n NavBar) ContainerAttributes(attrs tag.Attributes) NavBar {
	n.containerAttributes = attrs.Clone()
	return n
}

// ContainerItemsAttributes sets the attributes of the collapsible items div.
func (n NavBar) ContainerItemsAttributes(attrs tag.Attributes) NavBar {
	n.containerItemsAttributes = attrs.Clone()
	return n
}

// ToggleAttributes sets the attributes of the toggle button.
func (n NavBar) ToggleAttributes(attrs tag.Attributes) NavBar {
	n.toggleAttributes = attrs.Clone()
	return n
}

// Items sets the item list.
func (n NavBar) Items(items []Item) NavBar {
	n.items = append([]Item(nil), items...)
	return n
}

// CurrentPath sets the request path used to activate items.
func (n NavBar) CurrentPath(path string) NavBar {
	n.currentPath = path
	return n
}

// WithoutActivateItems disables activating items by the current path.
func (n NavBar) WithoutActivateItems() NavBar {
	n.activateItems = false
	return n
}

// WithoutLoadDefaultTheme renders bare tags without any default classes.
// The active item still gets the is-active class, so bare markup is not
// entirely class free when an item is active.
func (n NavBar) WithoutLoadDefaultTheme() NavBar {
	n.loadDefaultTheme = false
	return n
}

// Begin validates the configuration, renders the opening markup and pushes
// the navbar onto its scope. Every successful Begin needs a matching End.
func (n NavBar) Begin() (string, error) {
	if n.err != nil {
		return "", n.err
	}

	if err := ValidateItems(n.items); err != nil {
		return "", err
	}

	scope := n.scope
	if scope == nil {
		scope = defaultScope
	}

	id := n.id
	if id == "" {
		id = scope.nextID()
	}

	scope.push(frame{
		navbar: n,
		id:     id,
		items:  n.renderItems(n.items),
	})

	return n.renderHeader(id), nil
}

// Render is Begin followed by End on the navbar's scope.
func (n NavBar) Render() (string, error) {
	head, err := n.Begin()
	if err != nil {
		return "", err
	}

	scope := n.scope
	if scope == nil {
		scope = defaultScope
	}

	tail, err := scope.End()
	if err != nil {
		return "", err
	}

	return head + tail, nil
}
