package model

import (
	"time"

	"github.com/google/uuid"
)

// VerificationTokenModel mirrors the 'verification_tokens' table. One table
// serves both email verification and password reset, discriminated by purpose.
type VerificationTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Purpose   string    `gorm:"type:varchar(30);not null;uniqueIndex:idx_token_purpose"`
	Token     string    `gorm:"type:char(64);not null;uniqueIndex:idx_token_purpose"`
	IsUsed    bool      `gorm:"not null;default:false"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VerificationTokenModel) TableName() string {
	return "verification_tokens"
}
