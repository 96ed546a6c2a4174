package handler

import (
	"log/slog"
	"net/http"

	"vouch/internal/delivery/http/middleware"
	"vouch/internal/delivery/http/response"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// KYCHandler holds dependencies for verification lifecycle handlers.
type KYCHandler struct {
	kycUC  usecase.KYCUsecase
	logger *slog.Logger
}

// NewKYCHandler is the constructor for KYCHandler, injected by Fx.
func NewKYCHandler(kycUC usecase.KYCUsecase, logger *slog.Logger) *KYCHandler {
	return &KYCHandler{
		kycUC:  kycUC,
		logger: logger,
	}
}

// ListDocumentTypes returns the active document types applicable to the
// caller. An optional business_id query param resolves for the KYB axis.
func (h *KYCHandler) ListDocumentTypes(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var businessID *uuid.UUID
	if raw := c.QueryParam("business_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid business_id format")
		}
		businessID = &id
	}

	types, err := h.kycUC.ListDocumentTypes(c.Request().Context(), actor, businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, types, "")
}

// CreateSubmission opens a new personal verification attempt for the caller.
func (h *KYCHandler) CreateSubmission(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var body struct {
		Notes string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid submission input")
	}

	input := &usecase.CreateSubmissionInput{
		UserID: actor.UserID,
		Notes:  body.Notes,
	}

	submission, err := h.kycUC.CreateSubmission(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, submission, "Submission created")
}

// GetSubmission returns one submission with its documents. Visible to the
// submission's owner and to admins.
func (h *KYCHandler) GetSubmission(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid submission ID format")
	}

	submission, err := h.kycUC.GetSubmission(c.Request().Context(), actor, submissionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, submission, "")
}

// GetVerificationStatus summarizes the caller's latest personal verification
// state, including the document types still missing.
func (h *KYCHandler) GetVerificationStatus(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	status, err := h.kycUC.GetVerificationStatus(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

// UploadDocument attaches a multipart file to a pending submission.
// Re-uploading the same document type replaces the previous file.
func (h *KYCHandler) UploadDocument(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid submission ID format")
	}

	documentTypeID, err := uuid.Parse(c.FormValue("document_type_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid document_type_id format")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "File is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	input := &usecase.UploadDocumentInput{
		SubmissionID:   submissionID,
		DocumentTypeID: documentTypeID,
		Filename:       fileHeader.Filename,
		Size:           fileHeader.Size,
		Content:        file,
	}

	document, err := h.kycUC.UploadDocument(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, document, "Document uploaded")
}

// SubmitForReview freezes a pending submission and hands it to the
// verification worker.
func (h *KYCHandler) SubmitForReview(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid submission ID format")
	}

	submission, err := h.kycUC.SubmitForReview(c.Request().Context(), actor, submissionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, submission, "Submission is now in review")
}
