// Package models contains database model definitions.
package models

// MenuItem is one entry of a stored navbar menu. Items of a menu form a tree
// through ParentID, siblings are ordered by Position.
type MenuItem struct {
	ID       uint64  `gorm:"primaryKey"`
	Menu     string  `gorm:"size:64;index:idx_menu_parent"`
	ParentID *uint64 `gorm:"index:idx_menu_parent"`
	Position int

	Label     string `gorm:"size:255"`
	URL       string `gorm:"size:1024"`
	Icon      string `gorm:"size:255"`
	Active    bool
	Disabled  bool
	Hidden    bool
	Raw       bool // label is not html encoded
	Separator bool

	// attribute maps as json documents
	IconAttributes []byte
	Attributes     []byte
	LinkAttributes []byte
}
