package model

import "time"

// ListModel mirrors the 'lists' table. Every list carries its owner from the
// start; there is no ownerless variant of the schema.
type ListModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null"`
	UserID    int64  `gorm:"not null;index"`
	CreatedAt time.Time

	Tasks []*TaskModel `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ListModel) TableName() string {
	return "lists"
}
