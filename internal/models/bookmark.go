package models

const BookmarkCollection = "bookmark"

// Bookmark links a user (by email, no account required) to an event. The
// (user_email, event_id) pair is kept unique by a pre-check at write time,
// not by a storage constraint; a duplicate save is a no-op.
type Bookmark struct {
	UserEmail string `json:"user_email" bson:"user_email" binding:"required" validate:"required"`
	EventID   string `json:"event_id" bson:"event_id" binding:"required" validate:"required"`
}
