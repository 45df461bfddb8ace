package navbar

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrLabelRequired is returned when a non separator item has no label.
	ErrLabelRequired = errors.New(`The "label" option is required.`) //nolint:stylecheck,revive

	// ErrSeparatorNotAllowed is returned when a separator is placed in the top level item list.
	ErrSeparatorNotAllowed = errors.New("separators are only allowed in nested item lists")

	// ErrEndWithoutBegin is returned by End when no navbar is open.
	ErrEndWithoutBegin = errors.New("navbar: End called without a matching Begin")

	// ErrInvalidColor matches every *InvalidColorError.
	ErrInvalidColor = errors.New("invalid color")
)

// InvalidColorError reports a background color outside of the supported set.
type InvalidColorError struct {
	Value string
}

// Error lists all valid values sorted alphabetically.
func (e *InvalidColorError) Error() string {
	values := make([]string, 0, len(colors))
	for _, c := range colors {
		values = append(values, `"`+string(c)+`"`)
	}

	sort.Strings(values)

	return "Invalid color. Valid values are: " + strings.Join(values, ", ") + "."
}

// Is makes errors.Is(err, ErrInvalidColor) work.
func (e *InvalidColorError) Is(target error) bool {
	return target == ErrInvalidColor
}
