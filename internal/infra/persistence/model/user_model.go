package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	Name            string    `gorm:"type:varchar(100)"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	IsStaff         bool      `gorm:"not null;default:false"`
	IsEmailVerified bool      `gorm:"not null;default:false"`
	IsKYCVerified   bool      `gorm:"column:is_kyc_verified;not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time `gorm:"index"`

	Profile *ProfileModel `gorm:"foreignKey:UserID"`
	Roles   []*RoleModel  `gorm:"many2many:user_roles"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'profiles' table. UserID references users.id (UUID).
// Created atomically with its user; every user has exactly one profile.
type ProfileModel struct {
	UserID      uuid.UUID `gorm:"primaryKey"`
	AccountType string    `gorm:"type:varchar(20);not null"`
	Phone       string    `gorm:"type:varchar(30)"`
	Country     string    `gorm:"type:varchar(2)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(50);unique;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}
