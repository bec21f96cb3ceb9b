package models

const UserCollection = "user"

// User is a standalone record; bookmarks reference users by email only.
// IsActive defaults to true when the request omits it.
type User struct {
	Name     string `json:"name" bson:"name" binding:"required" validate:"required"`
	Email    string `json:"email" bson:"email" binding:"required,email" validate:"required,email"`
	IsActive *bool  `json:"is_active" bson:"is_active"`
}
