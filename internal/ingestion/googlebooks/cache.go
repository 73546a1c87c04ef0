package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// VolumeCache keeps catalog lookups in Redis so repeated detail views and
// searches skip the upstream API.
type VolumeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewVolumeCache connects to Redis and verifies the connection. Pass an
// empty address to get a no-op cache for tests and local runs without Redis.
func NewVolumeCache(redisAddr, password string, ttl time.Duration) (*VolumeCache, error) {
	if redisAddr == "" {
		return &VolumeCache{ttl: ttl}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         redisAddr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &VolumeCache{client: rdb, ttl: ttl}, nil
}

func (c *VolumeCache) GetVolume(ctx context.Context, googleID string) (*Volume, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, volumeKey(googleID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var vol Volume
	if err := json.Unmarshal(data, &vol); err != nil {
		return nil, err
	}
	return &vol, nil
}

func (c *VolumeCache) SetVolume(ctx context.Context, vol *Volume) error {
	if c == nil || c.client == nil || vol == nil {
		return nil
	}
	data, err := json.Marshal(vol)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, volumeKey(vol.GoogleBooksID), data, c.ttl).Err()
}

func (c *VolumeCache) GetSearch(ctx context.Context, query string) ([]Volume, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, searchKey(query)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var vols []Volume
	if err := json.Unmarshal(data, &vols); err != nil {
		return nil, err
	}
	return vols, nil
}

func (c *VolumeCache) SetSearch(ctx context.Context, query string, vols []Volume) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(vols)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(query), data, c.ttl).Err()
}

// Close releases the Redis connection.
func (c *VolumeCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func volumeKey(googleID string) string {
	return fmt.Sprintf("catalog:volume:%s", googleID)
}

func searchKey(query string) string {
	return fmt.Sprintf("catalog:search:%s", query)
}
