// Package menu stores navbar item trees in the database.
package menu

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/tailnav/internal/db/models"
	"github.com/GoPowerDNS-Admin/tailnav/navbar"
	"github.com/GoPowerDNS-Admin/tailnav/tag"
)

const menuQueryPattern = "menu = ?"

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrMenuNameEmpty is returned when a menu name is empty.
	ErrMenuNameEmpty = errors.New("menu name cannot be empty")
	// ErrMenuNotFound is returned when a menu has no items.
	ErrMenuNotFound = errors.New("menu not found")
)

// Load reads the item tree of menu.
func Load(db *gorm.DB, menu string) ([]navbar.Item, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if menu == "" {
		return nil, ErrMenuNameEmpty
	}

	var rows []models.MenuItem

	result := db.Where(menuQueryPattern, menu).Order("position").Order("id").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	if len(rows) == 0 {
		return nil, ErrMenuNotFound
	}

	children := make(map[uint64][]models.MenuItem)

	var roots []models.MenuItem

	for _, row := range rows {
		if row.ParentID == nil {
			roots = append(roots, row)
			continue
		}

		children[*row.ParentID] = append(children[*row.ParentID], row)
	}

	return buildTree(roots, children)
}

func buildTree(rows []models.MenuItem, children map[uint64][]models.MenuItem) ([]navbar.Item, error) {
	items := make([]navbar.Item, 0, len(rows))

	for _, row := range rows {
		item, err := toItem(row)
		if err != nil {
			return nil, err
		}

		if sub := children[row.ID]; len(sub) > 0 {
			if item.Items, err = buildTree(sub, children); err != nil {
				return nil, err
			}
		}

		items = append(items, item)
	}

	return items, nil
}

// Save replaces all items of menu with items.
func Save(db *gorm.DB, menu string, items []navbar.Item) error {
	if db == nil {
		return ErrDBNil
	}

	if menu == "" {
		return ErrMenuNameEmpty
	}

	if err := navbar.ValidateItems(items); err != nil {
		return err //nolint:wrapcheck
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(menuQueryPattern, menu).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}

		return insert(tx, menu, nil, items)
	})
}

func insert(tx *gorm.DB, menu string, parent *uint64, items []navbar.Item) error {
	for pos, item := range items {
		row, err := fromItem(item)
		if err != nil {
			return err
		}

		row.Menu = menu
		row.ParentID = parent
		row.Position = pos

		if err = tx.Create(&row).Error; err != nil {
			return err
		}

		if item.HasItems() {
			id := row.ID
			if err = insert(tx, menu, &id, item.Items); err != nil {
				return err
			}
		}
	}

	return nil
}

// Delete removes all items of menu.
func Delete(db *gorm.DB, menu string) error {
	if db == nil {
		return ErrDBNil
	}

	if menu == "" {
		return ErrMenuNameEmpty
	}

	result := db.Where(menuQueryPattern, menu).Delete(&models.MenuItem{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrMenuNotFound
	}

	return nil
}

// Count returns the number of stored items of menu, nested ones included.
func Count(db *gorm.DB, menu string) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64

	result := db.Model(&models.MenuItem{}).Where(menuQueryPattern, menu).Count(&count)

	return count, result.Error
}

// Names lists all stored menus.
func Names(db *gorm.DB) ([]string, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var names []string

	result := db.Model(&models.MenuItem{}).Distinct("menu").Order("menu").Pluck("menu", &names)

	return names, result.Error
}

// Store loads the items of one menu on every call.
type Store struct {
	DB   *gorm.DB
	Menu string
}

// Items implements the item source of the page handler.
func (s Store) Items() ([]navbar.Item, error) {
	return Load(s.DB, s.Menu)
}

func fromItem(item navbar.Item) (models.MenuItem, error) {
	row := models.MenuItem{
		Label:     item.Label,
		URL:       item.URL,
		Icon:      item.Icon,
		Active:    item.Active,
		Disabled:  item.Disabled,
		Hidden:    !item.IsVisible(),
		Raw:       !item.ShouldEncode(),
		Separator: item.Separator,
	}

	var err error

	if row.IconAttributes, err = marshalAttributes(item.IconAttributes); err != nil {
		return row, err
	}

	if row.Attributes, err = marshalAttributes(item.Attributes); err != nil {
		return row, err
	}

	row.LinkAttributes, err = marshalAttributes(item.LinkAttributes)

	return row, err
}

func toItem(row models.MenuItem) (navbar.Item, error) {
	item := navbar.Item{
		Label:     row.Label,
		URL:       row.URL,
		Icon:      row.Icon,
		Active:    row.Active,
		Disabled:  row.Disabled,
		Separator: row.Separator,
	}

	if row.Hidden {
		item.Visible = navbar.Bool(false)
	}

	if row.Raw {
		item.Encode = navbar.Bool(false)
	}

	var err error

	if item.IconAttributes, err = unmarshalAttributes(row.IconAttributes); err != nil {
		return item, err
	}

	if item.Attributes, err = unmarshalAttributes(row.Attributes); err != nil {
		return item, err
	}

	item.LinkAttributes, err = unmarshalAttributes(row.LinkAttributes)

	return item, err
}

func marshalAttributes(attrs tag.Attributes) ([]byte, error) {
	if len(attrs) == 0 {
		return nil, nil
	}

	return json.Marshal(attrs) //nolint:wrapcheck
}

func unmarshalAttributes(data []byte) (tag.Attributes, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var attrs tag.Attributes
	if err := json.Unmarshal(data, &attrs); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return attrs, nil
}
