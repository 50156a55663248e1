package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/parthodeb03/Project-Comfy-Go-sub000/config"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client       *redis.Client
	resourcesTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, resourcesTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:       redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		resourcesTTL: resourcesTTL,
	}
}

func (c *RedisCache) GetResources(ctx context.Context) ([]domain.InventoryRecord, error) {
	data, err := c.client.Get(ctx, resourcesKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var records []domain.InventoryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *RedisCache) SetResources(ctx context.Context, records []domain.InventoryRecord) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, resourcesKey(), payload, c.resourcesTTL).Err()
}

func resourcesKey() string {
	return "cache:resources"
}
