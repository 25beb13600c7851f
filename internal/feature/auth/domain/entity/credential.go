// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Credential represents a stored login credential.
// Records are created through registration and read once per login attempt;
// no exposed operation updates or deletes them.
type Credential struct {
	// ID is the unique identifier for the credential record.
	ID uint `gorm:"primaryKey"`

	// Username is the login name submitted at registration.
	// Uniqueness is intended but not enforced by the registration path.
	Username string `gorm:"size:255;not null;index"`

	// PasswordHash is the bcrypt hash of the password.
	// This never stores the plaintext password.
	PasswordHash string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the credential was created.
	CreatedAt time.Time
}
