package navbar

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/GoPowerDNS-Admin/tailnav/tag"
)

// separatorMarker is the string form of a separator in item files.
const separatorMarker = "-"

var validate = validator.New()

// Item is a single entry of the navbar. Items with nested Items render a sub list.
type Item struct {
	Label          string         `json:"label,omitempty"          toml:"label"          yaml:"label,omitempty"          validate:"required_unless=Separator true"` //nolint:lll
	URL            string         `json:"url,omitempty"            toml:"url"            yaml:"url,omitempty"`
	Icon           string         `json:"icon,omitempty"           toml:"icon"           yaml:"icon,omitempty"`
	IconAttributes tag.Attributes `json:"iconAttributes,omitempty" toml:"iconAttributes" yaml:"iconAttributes,omitempty"`
	Active         bool           `json:"active,omitempty"         toml:"active"         yaml:"active,omitempty"`
	Disabled       bool           `json:"disabled,omitempty"       toml:"disabled"       yaml:"disabled,omitempty"`
	Visible        *bool          `json:"visible,omitempty"        toml:"visible"        yaml:"visible,omitempty"`
	Encode         *bool          `json:"encode,omitempty"         toml:"encode"         yaml:"encode,omitempty"`
	Attributes     tag.Attributes `json:"attributes,omitempty"     toml:"attributes"     yaml:"attributes,omitempty"`
	LinkAttributes tag.Attributes `json:"linkAttributes,omitempty" toml:"linkAttributes" yaml:"linkAttributes,omitempty"`
	Separator      bool           `json:"separator,omitempty"      toml:"separator"      yaml:"separator,omitempty"`
	Items          []Item         `json:"items,omitempty"          toml:"items"          yaml:"items,omitempty"          validate:"dive"`
}

// Separator returns a divider entry. Separators are valid in nested lists only.
func Separator() Item {
	return Item{Separator: true}
}

// Bool returns a pointer to b, for Item.Visible and Item.Encode.
func Bool(b bool) *bool {
	return &b
}

// IsVisible reports whether the item is rendered. Items are visible by default.
func (i Item) IsVisible() bool {
	return i.Visible == nil || *i.Visible
}

// ShouldEncode reports whether the label is escaped. Labels are escaped unless
// Encode is explicitly false.
func (i Item) ShouldEncode() bool {
	return i.Encode == nil || *i.Encode
}

// HasItems reports whether the item has a non empty sub list.
func (i Item) HasItems() bool {
	return len(i.Items) > 0
}

// ValidateItems checks a top level item list.
func ValidateItems(items []Item) error {
	for _, item := range items {
		if item.Separator {
			return ErrSeparatorNotAllowed
		}

		if err := validate.Struct(item); err != nil {
			var validationErrors validator.ValidationErrors
			if errors.As(err, &validationErrors) {
				return ErrLabelRequired
			}

			return err //nolint:wrapcheck
		}
	}

	return nil
}

// item is used to decode without recursing into the custom unmarshalers.
type item Item

// UnmarshalJSON accepts an object or the string "-" for a separator.
// Any other string decodes to an item without label.
func (i *Item) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*i = Item{Separator: s == separatorMarker}
		return nil
	}

	var out item
	if err := json.Unmarshal(data, &out); err != nil {
		return err //nolint:wrapcheck
	}

	*i = Item(out)

	return nil
}

// UnmarshalTOML accepts a table or the string "-" for a separator.
// Tables are decoded through their json form, so nested lists may hold "-" as well.
func (i *Item) UnmarshalTOML(data any) error {
	if s, ok := data.(string); ok {
		*i = Item{Separator: s == separatorMarker}
		return nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return err //nolint:wrapcheck
	}

	var out item
	if err := json.Unmarshal(raw, &out); err != nil {
		return err //nolint:wrapcheck
	}

	*i = Item(out)

	return nil
}

// UnmarshalYAML accepts a mapping or the scalar "-" for a separator.
func (i *Item) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*i = Item{Separator: value.Value == separatorMarker}
		return nil
	}

	var out item
	if err := value.Decode(&out); err != nil {
		return err //nolint:wrapcheck
	}

	*i = Item(out)

	return nil
}
