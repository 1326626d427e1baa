package menu

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Category classifies a menu item.
type Category int

const (
	// UnknownCategory catches uninitialized values.
	UnknownCategory Category = iota
	MainCourse
	Dessert
	Beverage
)

func getCategoryStrings() map[Category]string {
	//nolint:exhaustive // UnknownCategory has no wire form
	return map[Category]string{
		MainCourse: "Main Course",
		Dessert:    "Dessert",
		Beverage:   "Beverage",
	}
}

// Categories lists the valid categories in declaration order.
func Categories() []Category {
	return []Category{MainCourse, Dessert, Beverage}
}

// ParseCategory maps the wire form ("Main Course", "Dessert", "Beverage") to a Category.
// Matching is exact, as clients send the values listed in the API schema.
func ParseCategory(s string) (Category, error) {
	for c, str := range getCategoryStrings() {
		if str == s {
			return c, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause(
		"category",
		fmt.Errorf("%q must be one of \"Main Course\", \"Dessert\", \"Beverage\"", s),
	)
}

// Validate rejects UnknownCategory and out-of-range values.
func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the wire form, or "Unknown" for invalid values.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
