package models

import "strings"

// Category is one of the fixed, lowercase transaction categories.
type Category string

const (
	CategoryGroceries      Category = "groceries"
	CategoryRent           Category = "rent"
	CategoryUtilities      Category = "utilities"
	CategoryDining         Category = "dining"
	CategoryTransportation Category = "transportation"
	CategoryEntertainment  Category = "entertainment"
	CategoryShopping       Category = "shopping"
	CategoryHealthcare     Category = "healthcare"
	CategorySalary         Category = "salary"
	CategoryFreelance      Category = "freelance"
	CategoryInvestments    Category = "investments"
	CategoryOther          Category = "other"
)

// Categories lists every supported category in display order.
var Categories = []Category{
	CategoryGroceries,
	CategoryRent,
	CategoryUtilities,
	CategoryDining,
	CategoryTransportation,
	CategoryEntertainment,
	CategoryShopping,
	CategoryHealthcare,
	CategorySalary,
	CategoryFreelance,
	CategoryInvestments,
	CategoryOther,
}

// categoryColors is the chart palette, keyed by category.
var categoryColors = map[Category]string{
	CategoryGroceries:      "#22c55e",
	CategoryRent:           "#ef4444",
	CategoryUtilities:      "#f59e0b",
	CategoryDining:         "#f97316",
	CategoryTransportation: "#3b82f6",
	CategoryEntertainment:  "#a855f7",
	CategoryShopping:       "#ec4899",
	CategoryHealthcare:     "#14b8a6",
	CategorySalary:         "#10b981",
	CategoryFreelance:      "#6366f1",
	CategoryInvestments:    "#0ea5e9",
	CategoryOther:          "#64748b",
}

// Valid reports whether c is an exact (lowercase) member of Categories.
func (c Category) Valid() bool {
	_, ok := categoryColors[c]
	return ok
}

// Color returns the chart color for the category.
func (c Category) Color() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return categoryColors[CategoryOther]
}

// ParseCategory matches s case-insensitively against the fixed categories.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Valid()
}

// CategoryNames returns the categories as plain strings.
func CategoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return names
}
