package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessProfileModel mirrors the 'business_profiles' table.
type BusinessProfileModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name               string    `gorm:"type:varchar(255);not null"`
	RegistrationNumber string    `gorm:"type:varchar(100);unique;not null"`
	TaxID              string    `gorm:"column:tax_id;type:varchar(100)"`
	BusinessType       string    `gorm:"type:varchar(100)"`
	Industry           string    `gorm:"type:varchar(100)"`
	Country            string    `gorm:"type:varchar(2)"`
	Email              string    `gorm:"type:varchar(255)"`
	Phone              string    `gorm:"type:varchar(30)"`
	IsKYBVerified      bool      `gorm:"column:is_kyb_verified;not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Owners []*BusinessOwnerModel `gorm:"foreignKey:BusinessID"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessProfileModel) TableName() string {
	return "business_profiles"
}

// BusinessOwnerModel mirrors the 'business_owners' table. A user appears at
// most once per business.
type BusinessOwnerModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_business_owner"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_business_owner"`
	OwnershipType       string    `gorm:"type:varchar(20);not null"`
	OwnershipPercentage *float64  `gorm:"type:numeric(5,2)"`
	IsPrimaryContact    bool      `gorm:"not null;default:false"`
	CreatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessOwnerModel) TableName() string {
	return "business_owners"
}
