// Package tag renders HTML tags and attribute lists.
//
// Attribute values are encoded with HTML5 entities, attributes are emitted in
// a stable order so the generated markup can be compared byte by byte.
package tag

import (
	"fmt"
	"sort"
	"strings"
)

// Attributes maps an attribute name to its value.
//
// Supported values are string, []string, bool and nil. A true bool renders the
// bare attribute name, false or nil drops the attribute. A []string is joined
// with a single space, which is what class lists need. Decoded config values
// ([]any, numbers) are converted with fmt.
type Attributes map[string]any

// priority defines the order of well known attributes. Everything else is
// rendered afterwards, sorted by name.
var priority = []string{
	"type", "id", "class", "name", "value", "href", "src", "srcset",
	"form", "action", "method", "selected", "checked", "readonly",
	"disabled", "multiple", "size", "maxlength", "width", "height",
	"rows", "cols", "alt", "title", "rel", "media",
}

var priorityIndex = func() map[string]int {
	m := make(map[string]int, len(priority))
	for i, name := range priority {
		m[name] = i
	}

	return m
}()

var encoder = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Encode escapes s for use in HTML content and attribute values.
func Encode(s string) string {
	return encoder.Replace(s)
}

// Clone returns a shallow copy. Slice values are copied as well.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		if s, ok := v.([]string); ok {
			v = append([]string(nil), s...)
		}

		out[k] = v
	}

	return out
}

// Merge returns a copy of a with all keys of b set on top.
func (a Attributes) Merge(b Attributes) Attributes {
	out := a.Clone()
	for k, v := range b {
		out[k] = v
	}

	return out
}

// Classes returns the class attribute split into single classes.
func (a Attributes) Classes() []string {
	return splitClasses(a["class"])
}

// AddClass appends classes to the class attribute, skipping ones already present.
func (a Attributes) AddClass(classes ...string) Attributes {
	out := a.Clone()
	out["class"] = joinClasses(a.Classes(), classes)

	return out
}

// PrependClass puts classes in front of the existing class attribute.
func (a Attributes) PrependClass(classes ...string) Attributes {
	out := a.Clone()
	out["class"] = joinClasses(classes, a.Classes())

	return out
}

// AppendStyle appends css declarations to the style attribute. A missing
// trailing semicolon of the current style is added first.
func (a Attributes) AppendStyle(style string) Attributes {
	out := a.Clone()

	current, _ := a["style"].(string)
	current = strings.TrimSpace(current)

	switch {
	case current == "":
		out["style"] = style
	case strings.HasSuffix(current, ";"):
		out["style"] = current + " " + style
	default:
		out["style"] = current + "; " + style
	}

	return out
}

// Render renders the attributes as ` name="value"` pairs.
func Render(attrs Attributes) string {
	if len(attrs) == 0 {
		return ""
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		pi, iok := priorityIndex[names[i]]
		pj, jok := priorityIndex[names[j]]

		switch {
		case iok && jok:
			return pi < pj
		case iok:
			return true
		case jok:
			return false
		default:
			return names[i] < names[j]
		}
	})

	var b strings.Builder

	for _, name := range names {
		switch v := attrs[name].(type) {
		case nil:
		case bool:
			if v {
				b.WriteString(" " + name)
			}
		case string:
			b.WriteString(" " + name + `="` + Encode(v) + `"`)
		case []string:
			if name == "class" && len(v) == 0 {
				continue
			}

			b.WriteString(" " + name + `="` + Encode(strings.Join(v, " ")) + `"`)
		case []any:
			b.WriteString(" " + name + `="` + Encode(strings.Join(toStrings(v), " ")) + `"`)
		default:
			b.WriteString(" " + name + `="` + Encode(fmt.Sprint(v)) + `"`)
		}
	}

	return b.String()
}

// Open renders an opening tag.
func Open(name string, attrs Attributes) string {
	return "<" + name + Render(attrs) + ">"
}

// Close renders a closing tag.
func Close(name string) string {
	return "</" + name + ">"
}

// Tag renders a complete element. content is inserted as is.
func Tag(name, content string, attrs Attributes) string {
	return Open(name, attrs) + content + Close(name)
}

// Void renders an element without content and closing tag, e.g. img.
func Void(name string, attrs Attributes) string {
	return Open(name, attrs)
}

func splitClasses(v any) []string {
	switch c := v.(type) {
	case string:
		return strings.Fields(c)
	case []string:
		var out []string
		for _, s := range c {
			out = append(out, strings.Fields(s)...)
		}

		return out
	case []any:
		return splitClasses(toStrings(c))
	default:
		return nil
	}
}

func joinClasses(first, second []string) []string {
	seen := make(map[string]struct{}, len(first)+len(second))
	out := make([]string, 0, len(first)+len(second))

	for _, list := range [][]string{first, second} {
		for _, c := range list {
			if _, ok := seen[c]; ok {
				continue
			}

			seen[c] = struct{}{}
			out = append(out, c)
		}
	}

	return out
}

func toStrings(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprint(v))
	}

	return out
}
