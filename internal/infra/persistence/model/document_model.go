package model

import (
	"time"

	"github.com/google/uuid"
)

// DocumentTypeModel mirrors the 'document_types' table. Entries are
// soft-disabled through is_active; deletion is blocked while documents
// reference them (FK RESTRICT).
type DocumentTypeModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(100);unique;not null"`
	Description   string    `gorm:"type:text"`
	ApplicableTo  string    `gorm:"type:varchar(20);not null"`
	IsActive      bool      `gorm:"not null;default:true"`
	IsRequired    bool      `gorm:"not null;default:false"`
	MaxFileSizeMB int       `gorm:"column:max_file_size_mb;not null"`
	AllowedFile   []string  `gorm:"type:jsonb;serializer:json"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	RequiredRoles []*RoleModel `gorm:"many2many:document_type_roles"`
}

// TableName explicitly sets the table name for GORM.
func (DocumentTypeModel) TableName() string {
	return "document_types"
}

// KYCSubmissionModel mirrors the 'kyc_submissions' table. BusinessID is null
// for personal KYC submissions. ReviewedBy is null for automated resolutions
// and set null when the reviewing admin is deleted.
type KYCSubmissionModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	BusinessID      *uuid.UUID `gorm:"type:uuid;index"`
	Status          string     `gorm:"type:varchar(20);not null;index"`
	SubmittedAt     *time.Time
	ReviewedAt      *time.Time
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason string     `gorm:"type:text"`
	Notes           string     `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	User     *UserModel            `gorm:"foreignKey:UserID"`
	Business *BusinessProfileModel `gorm:"foreignKey:BusinessID"`

	// Documents die with their submission.
	Documents []*KYCDocumentModel `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (KYCSubmissionModel) TableName() string {
	return "kyc_submissions"
}

// KYCDocumentModel mirrors the 'kyc_documents' table. One document per
// (submission, document type) pair; the type FK is RESTRICT so referenced
// catalog entries cannot be deleted.
type KYCDocumentModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SubmissionID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_submission_doctype"`
	DocumentTypeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_submission_doctype"`
	FilePath        string    `gorm:"type:varchar(500);not null"`
	Status          string    `gorm:"type:varchar(20);not null"`
	UploadedAt      time.Time
	ReviewedAt      *time.Time
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason string     `gorm:"type:text"`
	FileSizeBytes   int64      `gorm:"not null;default:0"`
	FileHash        string     `gorm:"type:char(64)"`

	DocumentType *DocumentTypeModel `gorm:"foreignKey:DocumentTypeID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (KYCDocumentModel) TableName() string {
	return "kyc_documents"
}
