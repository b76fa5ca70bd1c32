package placemark

import (
	"strings"

	"github.com/agentstation/automark/pkg/errors"
)

// Category is the status a placemark represents. The set is closed.
type Category int

const (
	// CategoryUnknown is the zero value and never valid in a document.
	CategoryUnknown Category = iota
	// CategoryEnrollment marks a person who has enrolled.
	CategoryEnrollment
	// CategorySkilling marks a person in skilling.
	CategorySkilling
	// CategoryPlacement marks a person who has been placed.
	CategoryPlacement
)

var categoryNames = map[Category]string{
	CategoryEnrollment: "enrollment",
	CategorySkilling:   "skilling",
	CategoryPlacement:  "placement",
}

var categoryStyles = map[Category]string{
	CategoryEnrollment: "#m_ylw-pushpin100",
	CategorySkilling:   "#msn_shaded_dot000",
	CategoryPlacement:  "#msn_shaded_dot002",
}

// Categories returns every valid category in declaration order.
func Categories() []Category {
	return []Category{CategoryEnrollment, CategorySkilling, CategoryPlacement}
}

// ParseCategory resolves a raw category tag. Unknown tags are a lookup error.
func ParseCategory(raw string) (Category, error) {
	tag := strings.ToLower(strings.TrimSpace(raw))
	for c, name := range categoryNames {
		if name == tag {
			return c, nil
		}
	}
	return CategoryUnknown, errors.NewCategoryError(tag)
}

// String returns the category tag as it appears in folder names and records.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Style returns the styleUrl bound to the category.
func (c Category) Style() string {
	return categoryStyles[c]
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	_, ok := categoryNames[c]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
