package entities

// Category is the status bucket an issue is counted in.
type Category string

const (
	// CategoryResolved covers finished work.
	CategoryResolved Category = "resolved"
	// CategoryInProgress covers work under way.
	CategoryInProgress Category = "in_progress"
	// CategoryOpen covers every recognised but unfinished state.
	CategoryOpen Category = "open"
	// CategoryOther is used when no state could be found.
	CategoryOther Category = "other"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryResolved, CategoryInProgress, CategoryOpen, CategoryOther}

// String returns the string representation of a Category.
func (c Category) String() string {
	return string(c)
}
