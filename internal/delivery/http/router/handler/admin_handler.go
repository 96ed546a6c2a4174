package handler

import (
	"log/slog"
	"net/http"

	"vouch/internal/delivery/http/middleware"
	"vouch/internal/delivery/http/response"
	"vouch/internal/domain/entity"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for review and catalog administration.
type AdminHandler struct {
	kycUC  usecase.KYCUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(kycUC usecase.KYCUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		kycUC:  kycUC,
		logger: logger,
	}
}

// resolveSubmissionRequest is the wire shape for a manual resolution.
type resolveSubmissionRequest struct {
	Approve         bool   `json:"approve"`
	RejectionReason string `json:"rejection_reason"`
}

// ResolveSubmission moves an in-review submission to a terminal status.
func (h *AdminHandler) ResolveSubmission(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid submission ID format")
	}

	var req resolveSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resolution input")
	}

	reviewerID := actor.UserID
	input := &usecase.ResolveSubmissionInput{
		SubmissionID:    submissionID,
		ReviewerID:      &reviewerID,
		Approve:         req.Approve,
		RejectionReason: req.RejectionReason,
	}

	if err := h.kycUC.ResolveSubmission(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Submission resolved")
}

// reviewDocumentRequest is the wire shape for a single document review.
type reviewDocumentRequest struct {
	Approve         bool   `json:"approve"`
	RejectionReason string `json:"rejection_reason"`
}

// ReviewDocument records the review outcome for one document.
func (h *AdminHandler) ReviewDocument(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid document ID format")
	}

	var req reviewDocumentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	input := &usecase.ReviewDocumentInput{
		DocumentID:      documentID,
		ReviewerID:      actor.UserID,
		Approve:         req.Approve,
		RejectionReason: req.RejectionReason,
	}

	if err := h.kycUC.ReviewDocument(c.Request().Context(), actor, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Document reviewed")
}

// bulkReviewRequest is the wire shape for a bulk override.
type bulkReviewRequest struct {
	SubmissionIDs   []uuid.UUID `json:"submission_ids" validate:"required,min=1"`
	Approve         bool        `json:"approve"`
	RejectionReason string      `json:"rejection_reason"`
}

// BulkReview force-resolves a batch of submissions in one pass.
func (h *AdminHandler) BulkReview(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req bulkReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk review input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.BulkReviewInput{
		SubmissionIDs:   req.SubmissionIDs,
		ReviewerID:      actor.UserID,
		Approve:         req.Approve,
		RejectionReason: req.RejectionReason,
	}

	output, err := h.kycUC.BulkReview(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Bulk review completed")
}

// documentTypeRequest is the wire shape for catalog entries.
type documentTypeRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description"`
	ApplicableTo  string   `json:"applicable_to" validate:"required"`
	IsActive      bool     `json:"is_active"`
	IsRequired    bool     `json:"is_required"`
	RequiredRoles []string `json:"required_roles"`
	MaxFileSizeMB int      `json:"max_file_size_mb" validate:"gt=0"`
	AllowedFile   []string `json:"allowed_file"`
}

func (r *documentTypeRequest) toInput() *usecase.DocumentTypeInput {
	return &usecase.DocumentTypeInput{
		Name:          r.Name,
		Description:   r.Description,
		ApplicableTo:  entity.Applicability(r.ApplicableTo),
		IsActive:      r.IsActive,
		IsRequired:    r.IsRequired,
		RequiredRoles: r.RequiredRoles,
		MaxFileSizeMB: r.MaxFileSizeMB,
		AllowedFile:   r.AllowedFile,
	}
}

// ListAllDocumentTypes returns the whole catalog, inactive entries included.
func (h *AdminHandler) ListAllDocumentTypes(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	types, err := h.kycUC.ListAllDocumentTypes(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, types, "")
}

// CreateDocumentType adds a catalog entry.
func (h *AdminHandler) CreateDocumentType(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req documentTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid document type input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	docType, err := h.kycUC.CreateDocumentType(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, docType, "Document type created")
}

// UpdateDocumentType modifies a catalog entry.
func (h *AdminHandler) UpdateDocumentType(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	typeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid document type ID format")
	}

	var req documentTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid document type input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	docType, err := h.kycUC.UpdateDocumentType(c.Request().Context(), actor, typeID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, docType, "Document type updated")
}

// DeleteDocumentType removes an unreferenced catalog entry.
func (h *AdminHandler) DeleteDocumentType(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	typeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid document type ID format")
	}

	if err := h.kycUC.DeleteDocumentType(c.Request().Context(), actor, typeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Document type deleted")
}
