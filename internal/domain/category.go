package domain

// FallbackCategory is the category tasks fall back to when their own
// category is removed or none is supplied.
const FallbackCategory = "Personal"

// DefaultCategories are always present and cannot be deleted. Order is
// preserved for display.
var DefaultCategories = []string{"Work", "Personal", "Shopping", "Health", "Outdoor"}

// IsDefaultCategory reports whether name is one of the permanent default
// categories. Matching is case-sensitive.
func IsDefaultCategory(name string) bool {
	for _, c := range DefaultCategories {
		if c == name {
			return true
		}
	}
	return false
}
