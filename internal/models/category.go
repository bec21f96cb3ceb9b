package models

const CategoryCollection = "category"

// Category groups venues and events for discovery filters. Slug is the
// URL-safe identifier other documents reference via category_slug.
type Category struct {
	Name  string `json:"name" bson:"name" binding:"required" validate:"required"`
	Slug  string `json:"slug" bson:"slug" binding:"required" validate:"required"`
	Icon  string `json:"icon,omitempty" bson:"icon,omitempty"`
	Color string `json:"color,omitempty" bson:"color,omitempty"`
}

// DefaultCategories is the fixed set inserted into an empty category
// collection by the seed endpoint.
var DefaultCategories = []Category{
	{Name: "Clubs", Slug: "clubs", Icon: "music", Color: "purple"},
	{Name: "Food", Slug: "food", Icon: "utensils", Color: "teal"},
	{Name: "Concerts", Slug: "concerts", Icon: "mic", Color: "purple"},
	{Name: "Plays", Slug: "plays", Icon: "drama", Color: "purple"},
	{Name: "Outdoors", Slug: "outdoors", Icon: "tree", Color: "teal"},
}
