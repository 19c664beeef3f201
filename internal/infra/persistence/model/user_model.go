// Package model contains the GORM-specific persistence structs.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
// Column names preserve the service's existing storage contract
// (uuid / is_adm / created_on / updated_on).
type UserModel struct {
	ID           uuid.UUID `gorm:"column:uuid;type:uuid;primary_key;default:uuid_generate_v4()"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_users_email"`
	Name         string    `gorm:"column:name;type:varchar(255);not null;default:''"`
	PasswordHash string    `gorm:"column:password;type:varchar(255);not null"`
	IsAdmin      bool      `gorm:"column:is_adm;not null;default:false"`
	CreatedAt    time.Time `gorm:"column:created_on;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_on;autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
