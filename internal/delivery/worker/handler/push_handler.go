// Package handler contains the Pub/Sub push handlers for the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"vouch/config"
	deliverycontext "vouch/internal/delivery/context"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/service"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages for verification processing
type PushHandler struct {
	pushAudience string
	logger       *slog.Logger
	kycUC        usecase.KYCUsecase
	tokenUC      usecase.TokenUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	KYCUC   usecase.KYCUsecase
	TokenUC usecase.TokenUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Push auth is verified only when an expected audience is configured,
	// which only makes sense for the google provider.
	var pushAudience string
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == config.PubSubProviderGoogle {
		pushAudience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		pushAudience: pushAudience,
		logger:       params.Logger,
		kycUC:        params.KYCUC,
		tokenUC:      params.TokenUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token when an audience is configured
	if h.pushAudience != "" {
		if err := verifyPubSubToken(c.Request(), h.pushAudience); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse verification task
	var task service.VerificationTask
	if err := json.Unmarshal(data, &task); err != nil {
		h.logger.Error("[Worker] Failed to parse verification task", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	requestID := h.extractRequestID(ctx, &pushMsg, &task)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing task",
		slog.String("task", task.Task),
		slog.String("submission_id", task.SubmissionID),
	)

	if err := h.processTask(ctx, &task); err != nil {
		reqLogger.Error("[Worker] Failed to process task",
			slog.String("task", task.Task),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Task processed successfully",
		slog.String("task", task.Task),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, task, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, task *service.VerificationTask) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try task field (from JSON payload)
	if task.RequestID != "" {
		return task.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processTask routes a task to the matching usecase. Errors that cannot be
// fixed by retrying, like a submission already resolved by an admin, come
// back unwrapped so the push is acked.
func (h *PushHandler) processTask(ctx context.Context, task *service.VerificationTask) error {
	switch task.Task {
	case service.TaskVerifyKYCSubmission:
		submissionID, err := uuid.Parse(task.SubmissionID)
		if err != nil {
			return errors.Wrap(err, "invalid submission id in task")
		}

		if err := h.kycUC.ProcessVerification(ctx, submissionID); err != nil {
			return classifyError(err)
		}

		return nil

	case service.TaskExpireOldTokens:
		expired, err := h.tokenUC.ExpireOldTokens(ctx)
		if err != nil {
			return classifyError(err)
		}

		h.logger.Info("[Worker] Stale tokens expired", slog.Int64("count", expired))

		return nil

	default:
		return errors.Errorf("unknown task: %s", task.Task)
	}
}

// classifyError marks infrastructure failures retryable. Domain errors stay
// non-retryable so Pub/Sub does not redeliver a push that can never succeed.
func classifyError(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return err
	}

	return newRetryableError(err)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request, audience string) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
