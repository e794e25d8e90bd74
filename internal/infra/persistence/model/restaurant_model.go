package model

// RestaurantModel is the Firestore document for the "Restaurant" collection.
// Field names follow the existing dataset: "category" is a comma-free single
// label on older documents and a list on newer ones is not observed, so it
// stays a string and is split on "/" at mapping time; "reviews" is the
// externally maintained aggregate count and "time" the opening-hours text.
type RestaurantModel struct {
	ID           string  `firestore:"-"`
	Name         string  `firestore:"name"`
	Address      string  `firestore:"address"`
	Category     string  `firestore:"category"`
	Latitude     float64 `firestore:"latitude"`
	Longitude    float64 `firestore:"longitude"`
	Rating       float64 `firestore:"rating"`
	Reviews      int     `firestore:"reviews"`
	ImagePath    string  `firestore:"imagePath"`
	OpeningHours string  `firestore:"time"`
}
