// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User represents an account that can own task lists. IDs are assigned by the
// persistence layer at creation and never change afterwards.
type User struct {
	ID           int64     // Auto-assigned identifier.
	Username     string    // Login identifier, unique across accounts.
	PasswordHash string    // Salted bcrypt hash; never exposed over the API.
	Disabled     bool      // Disabled accounts cannot log in or use tokens.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
