package navbar

import (
	"strings"

	"github.com/GoPowerDNS-Admin/tailnav/tag"
)

// Default theme classes.
var (
	classNav            = []string{"bg-black", "relative", "flex", "flex-wrap", "items-center", "px-2", "py-3", "mb-3"}
	classContainer      = []string{"container", "px-4", "mx-auto", "flex", "flex-wrap", "items-center", "justify-between"}
	classBrandContainer = []string{"flex", "justify-between", "lg:justify-start", "lg:static", "lg:w-auto", "px-4", "relative", "w-full"} //nolint:lll
	classBrandText      = []string{"font-bold", "inline-block", "leading-relaxed", "px-4", "text-sm", "text-white", "uppercase", "whitespace-nowrap"} //nolint:lll
	classContainerItems = []string{"lg:flex", "flex-grow", "items-center", "hidden"}
	classList           = []string{"flex", "flex-col", "lg:flex-row", "list-none", "lg:ml-auto"}
	classSubList        = []string{"flex", "flex-col", "list-none", "pl-4"}
	classItem           = []string{"nav-item"}
	classLink           = []string{"flex", "font-bold", "hover:opacity-75", "items-center", "leading-snug", "px-3", "py-2", "text-white", "text-xs", "uppercase"} //nolint:lll
	classSeparator      = []string{"border-t", "border-white", "opacity-25", "my-1"}
)

const (
	classActive   = "is-active"
	styleDisabled = "opacity:.75; pointer-events:none;"
	toggleIcon    = "&#9776;"
)

// themed adds the default classes unless the default theme is disabled.
func (n NavBar) themed(attrs tag.Attributes, classes ...string) tag.Attributes {
	if attrs == nil {
		attrs = tag.Attributes{}
	}

	if !n.loadDefaultTheme {
		return attrs.Clone()
	}

	return attrs.AddClass(classes...)
}

func (n NavBar) renderHeader(id string) string {
	var b strings.Builder

	navClasses := classNav
	if n.color != "" {
		navClasses = append([]string{string(n.color)}, classNav...)
	}

	b.WriteString(tag.Open("nav", n.themed(n.attributes, navClasses...).Merge(tag.Attributes{"id": id + "-navbar"})))
	b.WriteString("\n")
	b.WriteString(tag.Open("div", n.themed(n.containerAttributes, classContainer...)))
	b.WriteString("\n")

	if n.brand != "" {
		b.WriteString(n.brand)
		b.WriteString("\n")

		return b.String()
	}

	b.WriteString(tag.Open("div", n.themed(nil, classBrandContainer...)))
	b.WriteString("\n")

	if n.brandImage != "" {
		attrs := tag.Attributes{}.Merge(n.brandImageAttributes).Merge(tag.Attributes{
			"src": n.brandImage,
			"alt": "",
		})

		b.WriteString(tag.Void("img", attrs))
		b.WriteString("\n")
	}

	if n.brandText != "" {
		text := n.brandText
		if !n.brandTextRaw {
			text = tag.Encode(text)
		}

		attrs := n.themed(n.brandTextAttributes, classBrandText...)

		if n.brandLink != "" {
			attrs["href"] = n.brandLink
			b.WriteString(tag.Tag("a", text, attrs))
			b.WriteString("\n")
		} else {
			b.WriteString(tag.Tag("span", text, attrs))
		}
	}

	b.WriteString(n.renderToggle(id))
	b.WriteString("\n")
	b.WriteString(tag.Close("div"))
	b.WriteString("\n")

	return b.String()
}

func (n NavBar) renderToggle(id string) string {
	attrs := tag.Attributes{
		"type":    "button",
		"onclick": "toggleNavbar('" + id + "-items-navbar')",
	}.Merge(n.toggleAttributes)

	return tag.Tag("button", toggleIcon, attrs)
}

func (n NavBar) renderFooter(id, items string) string {
	var b strings.Builder

	attrs := n.themed(n.containerItemsAttributes, classContainerItems...).Merge(tag.Attributes{"id": id + "-items-navbar"})

	b.WriteString(tag.Open("div", attrs))
	b.WriteString("\n")
	b.WriteString(tag.Open("ul", n.themed(nil, classList...)))
	b.WriteString("\n")
	b.WriteString(items)
	b.WriteString(tag.Close("ul"))
	b.WriteString("\n")
	b.WriteString(tag.Close("div"))
	b.WriteString("\n")
	b.WriteString(tag.Close("div"))
	b.WriteString("\n")
	b.WriteString(tag.Close("nav"))

	return b.String()
}

// renderItems renders the li elements of one list level.
func (n NavBar) renderItems(items []Item) string {
	var b strings.Builder

	for _, item := range items {
		if !item.IsVisible() {
			continue
		}

		if item.Separator {
			attrs := n.themed(item.Attributes, classSeparator...)
			attrs["role"] = "separator"

			b.WriteString(tag.Tag("li", "", attrs))
			b.WriteString("\n")

			continue
		}

		b.WriteString(tag.Open("li", n.themed(item.Attributes, classItem...)))
		b.WriteString("\n")
		b.WriteString(n.renderLink(item))
		b.WriteString("\n")

		if item.HasItems() {
			b.WriteString(tag.Open("ul", n.themed(nil, classSubList...)))
			b.WriteString("\n")
			b.WriteString(n.renderItems(item.Items))
			b.WriteString(tag.Close("ul"))
			b.WriteString("\n")
		}

		b.WriteString(tag.Close("li"))
		b.WriteString("\n")
	}

	return b.String()
}

func (n NavBar) renderLink(item Item) string {
	attrs := n.themed(item.LinkAttributes, classLink...)

	if n.isActive(item) {
		attrs = attrs.PrependClass(classActive)
	}

	attrs["href"] = item.URL
	if item.URL == "" {
		attrs["href"] = "#"
	}

	if item.Disabled {
		attrs = attrs.AppendStyle(styleDisabled)
	}

	return tag.Tag("a", n.renderLabel(item), attrs)
}

func (n NavBar) renderLabel(item Item) string {
	label := item.Label
	if item.ShouldEncode() {
		label = tag.Encode(label)
	}

	if item.Icon == "" {
		return label
	}

	icon := tag.Tag("i", "", tag.Attributes{}.Merge(item.IconAttributes).Merge(tag.Attributes{"class": item.Icon}))

	return "\n" + tag.Tag("span", icon, nil) + tag.Tag("span", label, nil) + "\n"
}

func (n NavBar) isActive(item Item) bool {
	if item.Active {
		return true
	}

	return n.activateItems && item.URL != "" && item.URL == n.currentPath
}
