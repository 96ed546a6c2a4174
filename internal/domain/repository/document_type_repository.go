// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"vouch/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for document type persistence.
var (
	// ErrDocumentTypeNotFound is returned when a document type is not found.
	ErrDocumentTypeNotFound = errors.New("document type not found")
	// ErrDocumentTypeReferenced is returned when deleting a document type that documents still reference.
	ErrDocumentTypeReferenced = errors.New("document type is referenced by existing documents")
)

// DocumentTypeRepository defines the interface for the document type catalog.
type DocumentTypeRepository interface {
	// FindByID retrieves a document type by its unique ID, with required roles preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DocumentType, error)

	// FindActive retrieves the full active catalog, with required roles preloaded.
	FindActive(ctx context.Context) ([]*entity.DocumentType, error)

	// FindAll retrieves the full catalog including inactive types.
	FindAll(ctx context.Context) ([]*entity.DocumentType, error)

	// Create persists a new document type.
	Create(ctx context.Context, docType *entity.DocumentType) error

	// Update modifies an existing document type.
	Update(ctx context.Context, docType *entity.DocumentType) error

	// Delete removes a document type. Fails with ErrDocumentTypeReferenced when
	// existing documents still point at it.
	Delete(ctx context.Context, id uuid.UUID) error
}
