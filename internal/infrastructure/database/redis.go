package database

import "github.com/redis/go-redis/v9"

// NewRedis returns a client for the catalog update channel.
func NewRedis(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}
