package entity

import "time"

// List is a named collection of tasks owned by exactly one user.
// Deleting a list removes its tasks with it.
type List struct {
	ID        int64   // Auto-assigned identifier.
	Name      string  // Display name, required.
	UserID    int64   // Owning user; every list has an owner.
	Tasks     []*Task // Tasks belonging to this list, ordered by id.
	CreatedAt time.Time
}
