package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	pingErr error
	opt     *redis.Options
}

func (s *stubClient) Get(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult("", redis.Nil)
}

func (s *stubClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	return redis.NewStatusResult("OK", nil)
}

func (s *stubClient) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", s.pingErr)
}

func (s *stubClient) Close() error { return nil }

func TestNewRedisClient(t *testing.T) {
	orig := redisNewClient
	defer func() { redisNewClient = orig }()

	stub := &stubClient{}
	redisNewClient = func(opt *redis.Options) redisClient {
		stub.opt = opt
		return stub
	}

	c, err := NewRedisClient("localhost:6379", "secret", 3)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Equal(t, "localhost:6379", stub.opt.Addr)
	require.Equal(t, "secret", stub.opt.Password)
	require.Equal(t, 3, stub.opt.DB)
}

func TestNewRedisClientPingError(t *testing.T) {
	orig := redisNewClient
	defer func() { redisNewClient = orig }()

	redisNewClient = func(opt *redis.Options) redisClient {
		return &stubClient{pingErr: errors.New("connection refused")}
	}

	_, err := NewRedisClient("localhost:6379", "", 0)
	require.Error(t, err)
}

func TestFakeCache(t *testing.T) {
	ctx := context.Background()

	fc := &FakeCache{}
	require.Panics(t, func() { fc.Get(ctx, "k") })
	require.Panics(t, func() { fc.Set(ctx, "k", "v", time.Minute) })
	require.NoError(t, fc.Close())

	got := ""
	fc = &FakeCache{
		GetFn: func(ctx context.Context, key string) *redis.StringCmd {
			got = key
			return redis.NewStringResult("value", nil)
		},
	}
	val, err := fc.Get(ctx, "k").Result()
	require.NoError(t, err)
	require.Equal(t, "value", val)
	require.Equal(t, "k", got)
}
