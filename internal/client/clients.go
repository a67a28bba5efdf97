package client

import (
	"github.com/sirupsen/logrus"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
)

type Clients interface {
	RedisClient() RedisClient
}

type clients struct {
	redisClient RedisClient
}

func (c clients) RedisClient() RedisClient {
	return c.redisClient
}

// NewClients wires external transports. Redis connectivity is attempted once;
// on failure RedisClient() is nil and the service layer commits to the
// in-memory store for the rest of the process lifetime.
func NewClients(cfg dto.Config) Clients {
	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		logrus.Errorf("Failed to connect to redis: %v", err)
		redisClient = nil
	}

	return &clients{
		redisClient: redisClient,
	}
}
