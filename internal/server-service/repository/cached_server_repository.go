package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"server-dashboard/internal/server-service/model"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// cachedServerRepository keeps single server lookups in redis and evicts a key after every write to that server.
type cachedServerRepository struct {
	redis    *redis.Client
	repo     ServerRepository
	cacheTTL time.Duration
	logger   *zap.Logger
}

func (*cachedServerRepository) getServerCachedKey(id uint) string {
	return fmt.Sprintf("server:%d", id)
}

func (c *cachedServerRepository) evict(ctx context.Context, id uint) {
	if err := c.redis.Del(ctx, c.getServerCachedKey(id)).Err(); err != nil {
		c.logger.Warn("failed to evict cached server", zap.Uint("server_id", id), zap.Error(err))
	}
}

func (c *cachedServerRepository) CreateServer(ctx context.Context, server model.Server) (model.Server, error) {
	return c.repo.CreateServer(ctx, server)
}

func (c *cachedServerRepository) GetServers(ctx context.Context) ([]model.Server, error) {
	return c.repo.GetServers(ctx)
}

func (c *cachedServerRepository) GetServerById(ctx context.Context, serverId uint) (model.Server, error) {
	key := c.getServerCachedKey(serverId)
	data, err := c.redis.Get(ctx, key).Result()
	if err == nil {
		var server model.Server
		e := json.Unmarshal([]byte(data), &server)
		if e == nil {
			return server, nil
		}
		c.logger.Warn("failed to decode cached server", zap.String("key", key), zap.Error(e))
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("failed to read cached server, falling back to database", zap.String("key", key), zap.Error(err))
		return c.repo.GetServerById(ctx, serverId)
	}

	server, err := c.repo.GetServerById(ctx, serverId)
	if err != nil {
		return server, err
	}
	b, err := json.Marshal(server)
	if err != nil {
		c.logger.Warn("failed to encode server for cache", zap.Uint("server_id", serverId), zap.Error(err))
		return server, nil
	}
	if err = c.redis.Set(ctx, key, string(b), c.cacheTTL).Err(); err != nil {
		c.logger.Warn("failed to cache server", zap.String("key", key), zap.Error(err))
	}
	return server, nil
}

func (c *cachedServerRepository) UpdateServer(ctx context.Context, serverId uint, updatedData model.Server) (model.Server, error) {
	server, err := c.repo.UpdateServer(ctx, serverId, updatedData)
	if err != nil {
		return server, err
	}
	c.evict(ctx, serverId)
	return server, nil
}

func (c *cachedServerRepository) UpdateServerStatus(ctx context.Context, serverId uint, status string, checkedAt time.Time) error {
	if err := c.repo.UpdateServerStatus(ctx, serverId, status, checkedAt); err != nil {
		return err
	}
	c.evict(ctx, serverId)
	return nil
}

func (c *cachedServerRepository) UpdateServerVersion(ctx context.Context, serverId uint, version string) error {
	if err := c.repo.UpdateServerVersion(ctx, serverId, version); err != nil {
		return err
	}
	c.evict(ctx, serverId)
	return nil
}

func (c *cachedServerRepository) DeleteServerById(ctx context.Context, serverId uint) error {
	if err := c.repo.DeleteServerById(ctx, serverId); err != nil {
		return err
	}
	c.evict(ctx, serverId)
	return nil
}

func NewCachedServerRepository(redis *redis.Client, repo ServerRepository, cacheTTL time.Duration, logger *zap.Logger) ServerRepository {
	return &cachedServerRepository{
		redis:    redis,
		repo:     repo,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}
