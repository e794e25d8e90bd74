package entity

import (
	"slices"
	"time"
)

// Review is a user's rating of a restaurant across three dimensions.
// The average is computed once at creation and never recomputed; after
// creation only Likes and LikedBy change.
type Review struct {
	ID             string
	RestaurantID   string
	UserID         string
	Description    string
	FoodRating     float64 // 0.0-5.0, zero means "not rated" and is rejected on submit.
	ServiceRating  float64
	AmbianceRating float64
	AverageRating  float64
	Likes          int
	LikedBy        []string // User IDs that have liked this review.
	PhotoURLs      []string
	VideoURL       string
	CreatedAt      time.Time
}

// AverageOf returns the arithmetic mean of the three sub-ratings.
func AverageOf(food, service, ambiance float64) float64 {
	return (food + service + ambiance) / 3
}

// IsLikedBy reports whether the given user is in the liker set.
func (r *Review) IsLikedBy(userID string) bool {
	return slices.Contains(r.LikedBy, userID)
}

// LikeState is a point-in-time view of a review's like status for one user.
type LikeState struct {
	IsLiked   bool `json:"isLiked"`
	LikeCount int  `json:"likeCount"`
}

// SpeculateLikeToggle returns the optimistic local state transition for a
// like toggle: the flag flips and the count moves by one. The caller shows
// this immediately and replaces it with the authoritative state once the
// store responds.
func SpeculateLikeToggle(current LikeState) LikeState {
	if current.IsLiked {
		return LikeState{IsLiked: false, LikeCount: current.LikeCount - 1}
	}

	return LikeState{IsLiked: true, LikeCount: current.LikeCount + 1}
}
