package models

const EventCollection = "event"

// Event references its venue and category through stored strings; neither
// reference is enforced against the target collection.
type Event struct {
	Title        string    `json:"title" bson:"title" binding:"required" validate:"required"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	StartTime    DateTime  `json:"start_time" bson:"start_time" binding:"required" validate:"required"`
	EndTime      *DateTime `json:"end_time,omitempty" bson:"end_time,omitempty"`
	VenueID      string    `json:"venue_id,omitempty" bson:"venue_id,omitempty"`
	CategorySlug string    `json:"category_slug,omitempty" bson:"category_slug,omitempty"`
	PriceMin     *float64  `json:"price_min,omitempty" bson:"price_min,omitempty"`
	PriceMax     *float64  `json:"price_max,omitempty" bson:"price_max,omitempty"`
	IsFree       bool      `json:"is_free" bson:"is_free"`
	BannerImage  string    `json:"banner_image,omitempty" bson:"banner_image,omitempty"`
	TicketURL    string    `json:"ticket_url,omitempty" bson:"ticket_url,omitempty"`
	Tags         []string  `json:"tags" bson:"tags"`
}
