// Package constants holds shared domain constants.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Firestore collection names. The `User`, `Restaurant`, `Review` and
// `PlaceLists` names are fixed by the existing dataset; `Credentials` and
// `Sessions` are owned by this service.
const (
	CollectionUsers       = "User"
	CollectionRestaurants = "Restaurant"
	CollectionReviews     = "Review"
	CollectionPlaceLists  = "PlaceLists"
	CollectionCredentials = "Credentials"
	CollectionSessions    = "Sessions"
)
