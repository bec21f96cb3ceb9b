package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVenueValidation(t *testing.T) {
	venue := Venue{
		Name: "Alliance Gardens",
		Location: &GeoPoint{
			Type:        "Point",
			Coordinates: []float64{36.8219, -1.2921},
		},
	}
	assert.NoError(t, Validate.Struct(venue))
}

func TestVenueValidationMissingName(t *testing.T) {
	assert.Error(t, Validate.Struct(Venue{}))
}

func TestVenueValidationBadCoordinates(t *testing.T) {
	venue := Venue{
		Name:     "Alliance Gardens",
		Location: &GeoPoint{Type: "Point", Coordinates: []float64{36.8219}},
	}
	assert.Error(t, Validate.Struct(venue))
}

func TestVenueValidationBadGeoType(t *testing.T) {
	venue := Venue{
		Name:     "Alliance Gardens",
		Location: &GeoPoint{Type: "Polygon", Coordinates: []float64{36.8219, -1.2921}},
	}
	assert.Error(t, Validate.Struct(venue))
}

func TestEventValidation(t *testing.T) {
	event := Event{
		Title:     "Jazz Night",
		StartTime: NewDateTime(time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)),
	}
	assert.NoError(t, Validate.Struct(event))

	assert.Error(t, Validate.Struct(Event{Title: "No start"}))
	assert.Error(t, Validate.Struct(Event{StartTime: NewDateTime(time.Now())}))
}

func TestBookmarkValidation(t *testing.T) {
	assert.NoError(t, Validate.Struct(Bookmark{UserEmail: "a@b.com", EventID: "abc"}))
	assert.Error(t, Validate.Struct(Bookmark{UserEmail: "a@b.com"}))
}

func TestUserValidation(t *testing.T) {
	assert.NoError(t, Validate.Struct(User{Name: "Amina", Email: "amina@example.com"}))
	assert.Error(t, Validate.Struct(User{Name: "Amina", Email: "not-an-email"}))
}
