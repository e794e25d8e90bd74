// Package model contains the persistence representations of the domain
// entities, tagged for the Firestore document store.
package model

import "time"

// UserModel is the Firestore document for the "User" collection.
// The review counter keeps the dataset's legacy field name. The legacy
// "level" field is intentionally not mapped: level is derived from the
// review count at read time and never persisted.
type UserModel struct {
	ID          string    `firestore:"-"`
	Email       string    `firestore:"email"`
	Name        string    `firestore:"name"`
	Handle      string    `firestore:"username"`
	ReviewCount int       `firestore:"jumlah_review"`
	CreatedAt   time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time `firestore:"updatedAt,serverTimestamp"`
}

// CredentialModel is the Firestore document for the "Credentials" collection.
type CredentialModel struct {
	ID             string    `firestore:"-"`
	UserID         string    `firestore:"userId"`
	Provider       string    `firestore:"provider"`
	ProviderUserID string    `firestore:"providerUserId"`
	PasswordHash   string    `firestore:"passwordHash,omitempty"`
	CreatedAt      time.Time `firestore:"createdAt,serverTimestamp"`
}

// SessionModel is the Firestore document for the "Sessions" collection.
type SessionModel struct {
	ID        string    `firestore:"-"`
	UserID    string    `firestore:"userId"`
	TokenHash string    `firestore:"tokenHash"`
	ExpiresAt time.Time `firestore:"expiresAt"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
}
