package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestCheckHealth(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	status := CheckHealth(context.Background(), "memory", nil, []*redis.Client{client})
	assert.True(t, status.Healthy())
	assert.Equal(t, status, GetHealthStatus())

	mr.Close()
	down := func(context.Context) error { return errors.New("no route to host") }
	status = CheckHealth(context.Background(), "mongo", down, []*redis.Client{client})
	assert.False(t, status.StoreUp)
	assert.Equal(t, []bool{false}, status.Redis)
	assert.False(t, status.Healthy())
}
