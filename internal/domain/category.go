package domain

import "fmt"

type Category string

const (
	CategoryAcademic Category = "Academic"
	CategorySocial   Category = "Social"
	CategorySports   Category = "Sports"
	CategoryCultural Category = "Cultural"
	CategoryWorkshop Category = "Workshop"
	CategoryCareer   Category = "Career"
)

// CategoryAll is the filter value that matches every category. It is never stored on an event.
const CategoryAll Category = "All"

var Categories = []Category{
	CategoryAcademic,
	CategorySocial,
	CategorySports,
	CategoryCultural,
	CategoryWorkshop,
	CategoryCareer,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategoryFilter accepts "All" or one of Categories.
func ParseCategoryFilter(s string) (Category, error) {
	c := Category(s)
	if c == CategoryAll || c.Valid() {
		return c, nil
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrValidation, s)
}
