package task

// Category classifies tasks. A task references a category by id only; the
// reference is soft and may point at a category that no longer exists.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// FallbackCategoryID is the pseudo-category display logic falls back to
// when a task's category reference cannot be resolved.
const FallbackCategoryID = "other"

// DefaultCategories returns the fixed set seeded at first run. The core
// exposes no category create/delete, only reassignment of a task's
// category field.
func DefaultCategories() []Category {
	return []Category{
		{ID: "work", Name: "工作", Color: "#FFB7B2", Icon: "briefcase"},
		{ID: "life", Name: "生活", Color: "#B5EAD7", Icon: "home"},
		{ID: "study", Name: "学习", Color: "#C7CEEA", Icon: "book"},
		{ID: "health", Name: "健康", Color: "#FFDAC1", Icon: "heart"},
		{ID: FallbackCategoryID, Name: "其他", Color: "#E2F0CB", Icon: "more-horizontal"},
	}
}

// ResolveCategory resolves a category id against the known set, falling
// back to the "other" pseudo-category for dangling references. This is a
// display-path helper; stats grouping deliberately does not use it.
func ResolveCategory(categories []Category, id string) Category {
	var fallback Category
	for _, c := range categories {
		if c.ID == id {
			return c
		}
		if c.ID == FallbackCategoryID {
			fallback = c
		}
	}
	if fallback.ID == "" {
		fallback = Category{ID: FallbackCategoryID, Name: id}
	}
	return fallback
}

// CategoryName returns the display name for a category id, or the literal
// id when it resolves to nothing.
func CategoryName(categories []Category, id string) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}
