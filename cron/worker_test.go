package cron

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"lexconnect/metrics"
	"lexconnect/models"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockAggregator struct {
	mock.Mock
}

func (m *mockAggregator) Recompute(ctx context.Context, lawyerID string) (*models.LawyerRating, error) {
	args := m.Called(ctx, lawyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LawyerRating), args.Error(1)
}

func (m *mockAggregator) ApplyIncrement(ctx context.Context, lawyerID string, newRating int) error {
	return m.Called(ctx, lawyerID, newRating).Error(0)
}

func (m *mockAggregator) Reconcile(ctx context.Context, lawyerID string) (bool, error) {
	args := m.Called(ctx, lawyerID)
	return args.Bool(0), args.Error(1)
}

func TestNewRecomputeTask(t *testing.T) {
	task, opts, err := NewRecomputeTask("L1", 8)
	require.NoError(t, err)

	assert.Equal(t, TypeRatingRecompute, task.Type())
	var p RecomputePayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, "L1", p.LawyerID)
	assert.Len(t, opts, 2)
}

func TestHandleRecomputeTask(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	agg := new(mockAggregator)
	agg.On("Recompute", mock.Anything, "L1").Return(&models.LawyerRating{Average: 4, Count: 2}, nil).Once()
	agg.On("Recompute", mock.Anything, "L2").Return(nil, errors.New("store down")).Once()
	handler := handleRecomputeTask(agg, m, zap.NewNop())

	task, _, err := NewRecomputeTask("L1", 1)
	require.NoError(t, err)
	assert.NoError(t, handler(context.Background(), task))

	task, _, err = NewRecomputeTask("L2", 1)
	require.NoError(t, err)
	assert.Error(t, handler(context.Background(), task))

	agg.AssertExpectations(t)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RecomputeRetries.WithLabelValues("succeeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RecomputeRetries.WithLabelValues("failed")))
}

func TestHandleRecomputeTask_BadPayloadSkipsRetry(t *testing.T) {
	handler := handleRecomputeTask(new(mockAggregator), nil, zap.NewNop())

	err := handler(context.Background(), asynq.NewTask(TypeRatingRecompute, []byte("{")))

	assert.ErrorIs(t, err, asynq.SkipRetry)
}
