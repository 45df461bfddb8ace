package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/GoPowerDNS-Admin/tailnav/navbar"
)

// itemsFile is the document layout of a toml items file.
type itemsFile struct {
	Items []navbar.Item `toml:"items"`
}

// ReadItems reads a menu item tree. The format is picked by the file extension.
// YAML and JSON files hold a plain list, TOML files an [[items]] table array.
func ReadItems(file string) ([]navbar.Item, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read items file")
	}

	var items []navbar.Item

	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &items)
	case ".json":
		err = json.Unmarshal(data, &items)
	case ".toml":
		var doc itemsFile

		err = toml.Unmarshal(data, &doc)
		items = doc.Items
	default:
		return nil, errors.Wrap(ErrUnknownItemsFormat, file)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode items file %s", file)
	}

	return items, nil
}

// Apply configures nb with the navbar section. Items are set separately, they
// may come from the database.
func (n *Navbar) Apply(nb navbar.NavBar) navbar.NavBar {
	if n.ID != "" {
		nb = nb.ID(n.ID)
	}

	if n.Color != "" {
		nb = nb.BackgroundColorTheme(navbar.Color(n.Color))
	}

	if n.BrandLink != nil {
		nb = nb.BrandLink(*n.BrandLink)
	}

	if n.WithoutDefaultTheme {
		nb = nb.WithoutLoadDefaultTheme()
	}

	if n.WithoutActivateItems {
		nb = nb.WithoutActivateItems()
	}

	return nb.
		Brand(n.Brand).
		BrandText(n.BrandText).
		BrandImage(n.BrandImage).
		BrandTextAttributes(n.BrandTextAttributes).
		BrandImageAttributes(n.BrandImageAttributes).
		Attributes(n.Attributes).
		ContainerAttributes(n.ContainerAttributes).
		ContainerItemsAttributes(n.ItemsAttributes).
		ToggleAttributes(n.ToggleAttributes)
}
