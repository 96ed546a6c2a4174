package pubsub

import (
	"context"
	"log/slog"

	"vouch/config"
	"vouch/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopDispatcher is a no-op implementation when Pub/Sub is disabled
type noopDispatcher struct {
	logger *slog.Logger
}

func (d *noopDispatcher) Dispatch(ctx context.Context, task *service.VerificationTask) error {
	d.logger.Debug("[NoopPubSub] Task dispatch disabled, skipping",
		slog.String("task", task.Task),
		slog.String("submission_id", task.SubmissionID),
	)

	return nil
}

func (d *noopDispatcher) Close() error {
	return nil
}

// DispatcherParams holds dependencies for TaskDispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewTaskDispatcher creates a TaskDispatcher based on configuration
func NewTaskDispatcher(params DispatcherParams) (service.TaskDispatcher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If PubSub is not configured, return a no-op dispatcher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op dispatcher")

		return &noopDispatcher{logger: logger}, nil
	}

	var dispatcher service.TaskDispatcher
	var err error

	switch cfg.Provider {
	case config.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP dispatcher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		dispatcher = NewLocalHTTPDispatcher(cfg.LocalEndpoint, logger)

	case config.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub dispatcher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		dispatcher, err = NewGooglePubSubDispatcher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close dispatcher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing TaskDispatcher")

			return dispatcher.Close()
		},
	})

	return dispatcher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTaskDispatcher),
)
