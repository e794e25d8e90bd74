package entity

import (
	"github.com/paulmach/orb"
)

// Restaurant is a read-mostly entity. Its aggregate rating and review count
// are maintained by an external pipeline, never recomputed here.
type Restaurant struct {
	ID           string
	Name         string
	Address      string
	Categories   []string  // One or more category labels, e.g. "ramen", "warung".
	Location     orb.Point // Longitude/latitude of the restaurant.
	Rating       float64   // Aggregate rating, 0-5.
	ReviewCount  int       // Aggregate number of reviews.
	ImagePath    string    // Reference to the restaurant's cover image.
	OpeningHours string    // Free-text operating hours, e.g. "10:00 - 22:00".
}
