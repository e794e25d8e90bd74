package model

import "time"

// PlaceListModel is the Firestore document for the "PlaceLists" collection.
// The document ID equals the creator's user ID, which enforces the
// one-list-per-user invariant at the store level. The membership array
// keeps the dataset's legacy field name "restaurantId".
type PlaceListModel struct {
	ID            string    `firestore:"-"`
	CreatorID     string    `firestore:"creatorId"`
	Title         string    `firestore:"title"`
	Notes         string    `firestore:"notes"`
	IsPublic      bool      `firestore:"isPublic"`
	RestaurantIDs []string  `firestore:"restaurantId"`
	CreatedAt     time.Time `firestore:"createdAt,serverTimestamp"`
}
