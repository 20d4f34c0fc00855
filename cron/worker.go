package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lexconnect/config"
	"lexconnect/metrics"
	"lexconnect/services/rating"
	"lexconnect/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeRatingRecompute = "rating:recompute"

// recomputeUniqueFor collapses repeated failures for one lawyer into a single pending task.
const recomputeUniqueFor = 5 * time.Minute

type RecomputePayload struct {
	LawyerID string `json:"lawyerId"`
}

// NewRecomputeTask builds the retry task for a lawyer whose rating could not be updated.
func NewRecomputeTask(lawyerID string, maxRetry int) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(RecomputePayload{LawyerID: lawyerID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeRatingRecompute, b)
	opts := []asynq.Option{
		asynq.MaxRetry(maxRetry),
		asynq.Unique(recomputeUniqueFor),
	}
	return task, opts, nil
}

// AsynqEnqueuer hands failed recomputes to the background worker.
type AsynqEnqueuer struct {
	Client   *asynq.Client
	MaxRetry int
}

func NewAsynqEnqueuer() *AsynqEnqueuer {
	return &AsynqEnqueuer{
		Client:   asynq.NewClient(queueRedisOpt()),
		MaxRetry: config.AppConfig.RecomputeMaxRetry,
	}
}

// EnqueueRecompute schedules a recompute. A task already pending for the lawyer counts as success.
func (e *AsynqEnqueuer) EnqueueRecompute(ctx context.Context, lawyerID string) error {
	task, opts, err := NewRecomputeTask(lawyerID, e.MaxRetry)
	if err != nil {
		return fmt.Errorf("failed to build recompute task: %w", err)
	}
	if _, err := e.Client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrDuplicateTask) {
			return nil
		}
		return fmt.Errorf("failed to enqueue recompute for lawyer %s: %w", lawyerID, err)
	}
	return nil
}

func (e *AsynqEnqueuer) Close() error {
	return e.Client.Close()
}

func queueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitRecomputeWorker runs the recompute worker in the background and returns it for shutdown.
func InitRecomputeWorker(agg rating.Aggregator, m *metrics.Metrics) *asynq.Server {
	logger := utils.GetLogger()
	concurrency := config.AppConfig.WorkerConcurrency
	if concurrency <= 0 {
		concurrency = 5
	}

	srv := asynq.NewServer(
		queueRedisOpt(),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRatingRecompute, handleRecomputeTask(agg, m, logger))

	go func() {
		logger.Info("Starting rating recompute worker", zap.Int("concurrency", concurrency))
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("Recompute worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("Max retry attempts reached for recompute worker")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

func handleRecomputeTask(agg rating.Aggregator, m *metrics.Metrics, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p RecomputePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil || p.LawyerID == "" {
			logger.Error("Invalid recompute payload", zap.ByteString("payload", task.Payload()), zap.Error(err))
			return fmt.Errorf("invalid recompute payload: %w", asynq.SkipRetry)
		}

		if _, err := agg.Recompute(ctx, p.LawyerID); err != nil {
			m.IncRecompute("failed")
			logger.Warn("Background rating recompute failed", zap.String("lawyerId", p.LawyerID), zap.Error(err))
			return err
		}
		m.IncRecompute("succeeded")
		logger.Debug("Background rating recompute done", zap.String("lawyerId", p.LawyerID))
		return nil
	}
}
