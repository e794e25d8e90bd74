// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core entity in the system, representing a unique "person" or "account".
// ReviewCount is the single authoritative input to the gamification state;
// the user's level is always derived from it and never stored.
type User struct {
	ID          string    // Document ID assigned by the store.
	Email       string    // The user's primary contact email, used as a login identifier.
	Name        string    // The user's display name.
	Handle      string    // The user's public handle (username). May be empty until chosen.
	ReviewCount int       // Cumulative number of reviews this user has submitted.
	CreatedAt   time.Time // Timestamp of when this user account was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this user's data.
}

// ProviderType identifies how a credential authenticates a user.
type ProviderType string

const (
	// ProviderTypeEmail is classic email/password authentication.
	ProviderTypeEmail ProviderType = "email"

	// ProviderTypeGoogle is federated Google Sign-In.
	ProviderTypeGoogle ProviderType = "google"
)

// Credential links an authentication method to a user account.
// For the email provider, ProviderUserID is the email address and
// PasswordHash is set; for Google it is the Google subject ID.
type Credential struct {
	ID             string
	UserID         string
	Provider       ProviderType
	ProviderUserID string
	PasswordHash   string
	CreatedAt      time.Time
}

// Session is a persisted refresh-token record. Only the hash of the token
// is stored; deleting the record invalidates the session.
type Session struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
