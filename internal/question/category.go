package question

import (
	"fmt"
	"strings"
)

// Category names a question pool. The set is closed: category strings from
// the outside are parsed against this enumeration before they go anywhere
// near a query, so no user input ever selects a table or column.
type Category string

const (
	CategoryGeneral Category = "general"
	CategoryCSE     Category = "cse"
	CategoryLogical Category = "logical"
)

// Categories lists the valid pools in display order.
func Categories() []Category {
	return []Category{CategoryGeneral, CategoryCSE, CategoryLogical}
}

// ParseCategory validates s against the enumeration.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryGeneral, CategoryCSE, CategoryLogical:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}
