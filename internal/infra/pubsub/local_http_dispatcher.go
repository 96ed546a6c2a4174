package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"vouch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localHTTPDispatcher implements TaskDispatcher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPDispatcher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPDispatcher creates a new local HTTP dispatcher for development
func NewLocalHTTPDispatcher(endpoint string, logger *slog.Logger) service.TaskDispatcher {
	return &localHTTPDispatcher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Dispatch publishes a task by sending HTTP POST to the local endpoint
func (d *localHTTPDispatcher) Dispatch(ctx context.Context, task *service.VerificationTask) error {
	// Serialize the task to JSON
	taskData, err := json.Marshal(task)
	if err != nil {
		return errors.WithStack(err)
	}

	// Create a Pub/Sub push message structure
	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/verification-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(taskData)
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	// Build attributes with optional request_id for tracing
	attributes := map[string]string{
		"task": task.Task,
	}
	if task.SubmissionID != "" {
		attributes["submission_id"] = task.SubmissionID
	}
	if task.RequestID != "" {
		attributes["request_id"] = task.RequestID
	}
	pushMsg.Message.Attributes = attributes

	// Serialize the push message
	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	d.logger.Info("[LocalPubSub] Dispatching task",
		slog.String("endpoint", d.endpoint),
		slog.String("task", task.Task),
		slog.String("submission_id", task.SubmissionID),
	)

	// Send HTTP POST request
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Add X-Request-Id header for tracing
	if task.RequestID != "" {
		req.Header.Set("X-Request-Id", task.RequestID)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	d.logger.Info("[LocalPubSub] Task dispatched successfully",
		slog.String("task", task.Task),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (d *localHTTPDispatcher) Close() error {
	return nil
}
