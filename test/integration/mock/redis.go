package mock

import (
	"context"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis bundles an in-process Redis with a client pointed at it.
type Redis struct {
	mini   *miniredis.Miniredis
	Client *redis.Client
}

// NewRedis starts an in-process Redis for one scenario.
func NewRedis() *Redis {
	mini, err := miniredis.Run()
	if err != nil {
		panic(err)
	}
	client := redis.NewClient(&redis.Options{
		Addr: mini.Addr(),
	})
	return &Redis{mini: mini, Client: client}
}

// Clear removes all stored keys.
func (r *Redis) Clear() error {
	return r.Client.FlushAll(context.TODO()).Err()
}

// Close shuts the client and the in-process server down.
func (r *Redis) Close() {
	_ = r.Client.Close()
	r.mini.Close()
}
