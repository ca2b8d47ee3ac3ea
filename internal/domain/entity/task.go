package entity

import "time"

// Task is a single to-do item inside a list.
type Task struct {
	ID        int64  // Auto-assigned identifier.
	Title     string // Required.
	Completed bool   // Defaults to false at creation.
	ListID    int64  // The list this task belongs to.
	CreatedAt time.Time
}
