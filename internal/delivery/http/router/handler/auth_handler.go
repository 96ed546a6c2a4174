// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"vouch/internal/delivery/http/middleware"
	"vouch/internal/delivery/http/response"
	"vouch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for account and credential handlers.
type AuthHandler struct {
	userUC  usecase.UserUsecase
	tokenUC usecase.TokenUsecase
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(userUC usecase.UserUsecase, tokenUC usecase.TokenUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		userUC:  userUC,
		tokenUC: tokenUC,
		logger:  logger,
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input *usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.userUC.RegisterUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// Do not return sensitive data in the response.
	return response.Success(c, http.StatusCreated, output.User, "User registered successfully")
}

// Login handles the login request and returns a JWT pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.userUC.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// GetProfile returns the authenticated caller's account.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), actor.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// RequestEmailVerification issues a fresh verification token for the caller
// and sends the verification mail.
func (h *AuthHandler) RequestEmailVerification(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	if err := h.tokenUC.RequestEmailVerification(c.Request().Context(), actor.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification email sent")
}

// ConfirmEmail redeems an email verification token.
func (h *AuthHandler) ConfirmEmail(c echo.Context) error {
	var input *usecase.ConfirmEmailInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}
	// Support the link-click flow where the token arrives as a query param.
	if input.Token == "" {
		input.Token = c.QueryParam("token")
	}

	if err := h.tokenUC.ConfirmEmail(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Email verified successfully")
}

// RequestPasswordReset issues a password reset token. Unknown email
// addresses succeed silently so the endpoint cannot be used to probe
// for accounts.
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var input *usecase.RequestPasswordResetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset request input")
	}

	if err := h.tokenUC.RequestPasswordReset(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "If the account exists, a reset email has been sent")
}

// ConfirmPasswordReset redeems a reset token and replaces the password.
func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var input *usecase.ConfirmPasswordResetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset confirmation input")
	}

	if err := h.tokenUC.ConfirmPasswordReset(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
