package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"vouch/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubDispatcher implements TaskDispatcher using Google Cloud Pub/Sub
type googlePubSubDispatcher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubDispatcher creates a new Google Pub/Sub dispatcher
func NewGooglePubSubDispatcher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.TaskDispatcher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Google Pub/Sub dispatcher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubDispatcher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// Dispatch publishes a task to Google Pub/Sub
func (d *googlePubSubDispatcher) Dispatch(ctx context.Context, task *service.VerificationTask) error {
	// Serialize the task to JSON
	data, err := json.Marshal(task)
	if err != nil {
		return errors.WithStack(err)
	}

	// Create Pub/Sub message with attributes for filtering and tracing
	attributes := map[string]string{
		"task": task.Task,
	}
	if task.SubmissionID != "" {
		attributes["submission_id"] = task.SubmissionID
	}
	if task.RequestID != "" {
		attributes["request_id"] = task.RequestID
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	}

	d.logger.Info("[GooglePubSub] Dispatching task",
		slog.String("task", task.Task),
		slog.String("submission_id", task.SubmissionID),
	)

	// Publish message
	result := d.publisher.Publish(ctx, msg)

	// Wait for publish result
	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	d.logger.Info("[GooglePubSub] Task dispatched successfully",
		slog.String("task", task.Task),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (d *googlePubSubDispatcher) Close() error {
	if d.publisher != nil {
		d.publisher.Stop()
	}
	if d.client != nil {
		return errors.WithStack(d.client.Close())
	}

	return nil
}
