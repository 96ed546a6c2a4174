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

// BusinessHandler holds dependencies for business registry handlers.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	kycUC      usecase.KYCUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(businessUC usecase.BusinessUsecase, kycUC usecase.KYCUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		businessUC: businessUC,
		kycUC:      kycUC,
		logger:     logger,
	}
}

// createBusinessRequest is the wire shape for business registration.
type createBusinessRequest struct {
	Name               string `json:"name" validate:"required"`
	RegistrationNumber string `json:"registration_number" validate:"required"`
	TaxID              string `json:"tax_id"`
	BusinessType       string `json:"business_type"`
	Industry           string `json:"industry"`
	Country            string `json:"country"`
	Email              string `json:"email" validate:"omitempty,email"`
	Phone              string `json:"phone"`
}

// CreateBusiness registers a business profile. The caller becomes the
// primary contact owner.
func (h *BusinessHandler) CreateBusiness(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req createBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.CreateBusinessInput{
		CreatorID:          actor.UserID,
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		TaxID:              req.TaxID,
		BusinessType:       req.BusinessType,
		Industry:           req.Industry,
		Country:            req.Country,
		Email:              req.Email,
		Phone:              req.Phone,
	}

	business, err := h.businessUC.CreateBusiness(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Business registered")
}

// GetBusiness returns one business profile with its owners.
func (h *BusinessHandler) GetBusiness(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID format")
	}

	business, err := h.businessUC.GetBusiness(c.Request().Context(), actor, businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "")
}

// ListOwnedBusinesses returns the businesses the caller owns.
func (h *BusinessHandler) ListOwnedBusinesses(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	businesses, err := h.businessUC.ListOwnedBusinesses(c.Request().Context(), actor.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// addOwnerRequest is the wire shape for linking a user to a business.
type addOwnerRequest struct {
	UserID              uuid.UUID `json:"user_id" validate:"required"`
	OwnershipType       string    `json:"ownership_type" validate:"required"`
	OwnershipPercentage *float64  `json:"ownership_percentage" validate:"omitempty,gte=0,lte=100"`
	IsPrimaryContact    bool      `json:"is_primary_contact"`
}

// AddOwner links a user to the business. Only the primary contact or an
// admin may manage the owner set.
func (h *BusinessHandler) AddOwner(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID format")
	}

	var req addOwnerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid owner input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.AddOwnerInput{
		BusinessID:          businessID,
		UserID:              req.UserID,
		OwnershipType:       entity.OwnershipType(req.OwnershipType),
		OwnershipPercentage: req.OwnershipPercentage,
		IsPrimaryContact:    req.IsPrimaryContact,
	}

	owner, err := h.businessUC.AddOwner(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, owner, "Owner added")
}

// RemoveOwner unlinks a user from the business.
func (h *BusinessHandler) RemoveOwner(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID format")
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID format")
	}

	if err := h.businessUC.RemoveOwner(c.Request().Context(), actor, businessID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Owner removed")
}

// CreateKYBSubmission opens a new verification attempt for the business.
// Any registered owner may start one.
func (h *BusinessHandler) CreateKYBSubmission(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID format")
	}

	var body struct {
		Notes string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid submission input")
	}

	input := &usecase.CreateSubmissionInput{
		UserID:     actor.UserID,
		BusinessID: &businessID,
		Notes:      body.Notes,
	}

	submission, err := h.kycUC.CreateSubmission(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, submission, "Submission created")
}
