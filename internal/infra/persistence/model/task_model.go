package model

import "time"

// TaskModel mirrors the 'tasks' table. ListID is required; the FK cascades on
// list deletion.
type TaskModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"type:varchar(255);not null"`
	Completed bool   `gorm:"not null;default:false"`
	ListID    int64  `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
