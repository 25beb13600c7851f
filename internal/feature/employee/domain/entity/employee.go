// Package entity defines the domain entities for the employee feature.
package entity

import "time"

// Employee represents a single employee record in the directory.
type Employee struct {
	// ID is the system-generated unique identifier. Immutable after creation.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the employee's display name.
	Name string `gorm:"size:255;not null" json:"name"`

	// Email is unique across all employee records.
	// The unique index is the single source of truth for uniqueness;
	// the insert path translates the resulting conflict into a domain error.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Mobile is the employee's phone number, stored as a string.
	Mobile string `gorm:"size:32;not null" json:"mobile"`

	// Designation is the employee's job title.
	Designation string `gorm:"size:255;not null" json:"designation"`

	// Gender is stored as submitted (e.g. "M", "F").
	Gender string `gorm:"size:16;not null" json:"gender"`

	// Course holds the selected course tags (e.g. "MCA", "BCA", "BSC").
	// Insertion order is irrelevant. Persisted as a JSON column.
	Course []string `gorm:"serializer:json;type:text" json:"course"`

	// Image is the filename of the uploaded profile image, served under /uploads.
	// It is a weak reference: deleting the record does not delete the file.
	Image string `gorm:"size:255;not null" json:"image"`

	// CreatedAt is the timestamp when the record was created. Immutable.
	CreatedAt time.Time `json:"createdAt"`
}
