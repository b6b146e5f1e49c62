package domain

import "time"

// User represents a patient account
type User struct {
	ID        string
	ClerkID   string
	Email     string
	FirstName string
	LastName  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
