package model

import "time"

// ReviewModel is the Firestore document for the "Review" collection.
type ReviewModel struct {
	ID             string    `firestore:"-"`
	RestaurantID   string    `firestore:"restaurantId"`
	UserID         string    `firestore:"userId"`
	Description    string    `firestore:"description"`
	FoodRating     float64   `firestore:"foodRating"`
	ServiceRating  float64   `firestore:"serviceRating"`
	AmbianceRating float64   `firestore:"ambianceRating"`
	AverageRating  float64   `firestore:"averageRating"`
	Likes          int       `firestore:"likes"`
	LikedBy        []string  `firestore:"likedBy"`
	PhotoURLs      []string  `firestore:"photoUrls"`
	VideoURL       string    `firestore:"videoUrl"`
	CreatedAt      time.Time `firestore:"createdAt,serverTimestamp"`
}
