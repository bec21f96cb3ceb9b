package models

const VenueCollection = "venue"

// GeoPoint is a GeoJSON point: type literal "Point", coordinates [lng, lat].
type GeoPoint struct {
	Type        string    `json:"type" bson:"type" binding:"omitempty,eq=Point" validate:"omitempty,eq=Point"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates" binding:"required,len=2" validate:"required,len=2"`
}

type Venue struct {
	Name         string    `json:"name" bson:"name" binding:"required" validate:"required"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	Address      string    `json:"address,omitempty" bson:"address,omitempty"`
	City         string    `json:"city,omitempty" bson:"city,omitempty"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Website      string    `json:"website,omitempty" bson:"website,omitempty"`
	CategorySlug string    `json:"category_slug,omitempty" bson:"category_slug,omitempty"`
	Location     *GeoPoint `json:"location,omitempty" bson:"location,omitempty"`
	Images       []string  `json:"images" bson:"images"`
}
