// Package model contains the GORM persistence models mirroring the database schema.
package model

import "time"

// UserModel mirrors the 'users' table. IDs are bigserial, assigned by PostgreSQL.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Disabled     bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time

	Lists []*ListModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
