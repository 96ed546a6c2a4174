package service

import (
	"context"
)

// Task names understood by the background worker.
const (
	TaskVerifyKYCSubmission = "verify_kyc_submission"
	TaskExpireOldTokens     = "expire_old_tokens"
)

// VerificationTask represents a submission handed off for asynchronous processing.
type VerificationTask struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	Task         string `json:"task"`
	SubmissionID string `json:"submission_id,omitempty"`
}

// TaskDispatcher defines the interface for handing tasks to the background worker
// through a message queue.
type TaskDispatcher interface {
	// Dispatch publishes a task for async processing.
	Dispatch(ctx context.Context, task *VerificationTask) error

	// Close releases any resources held by the dispatcher.
	Close() error
}
