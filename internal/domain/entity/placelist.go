package entity

import (
	"slices"
	"time"
)

// PlaceList is a user's single collection of bookmarked restaurants.
// Each user has at most one list; the store keys the document by the
// owner's user ID so concurrent first-time creates cannot produce two.
type PlaceList struct {
	ID            string
	CreatorID     string
	Title         string
	Notes         string
	IsPublic      bool
	RestaurantIDs []string // Membership set; order carries no meaning.
	CreatedAt     time.Time
}

// Contains reports whether the restaurant is bookmarked in this list.
func (p *PlaceList) Contains(restaurantID string) bool {
	return slices.Contains(p.RestaurantIDs, restaurantID)
}
