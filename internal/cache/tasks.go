// Package cache provides an optional read-through Redis cache for task
// lookups. A nil *TaskCache (or one built with a nil client) disables
// caching entirely, so the core works without Redis.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"tasktrack/internal/models"
)

const defaultTTL = time.Hour

type TaskCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTaskCache(client *redis.Client, ttl time.Duration) *TaskCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &TaskCache{client: client, ttl: ttl}
}

func taskKey(id int) string {
	return fmt.Sprintf("task:%d", id)
}

// Get returns the cached task and whether it was present. Cache failures
// count as misses; the database remains the source of truth.
func (c *TaskCache) Get(ctx context.Context, id int) (models.Task, bool) {
	if c == nil || c.client == nil {
		return models.Task{}, false
	}
	raw, err := c.client.Get(ctx, taskKey(id)).Result()
	if err != nil {
		return models.Task{}, false
	}
	var task models.Task
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		return models.Task{}, false
	}
	return task, true
}

// Set stores a task under task:<id>. Errors are ignored: the cache is a
// read accelerator, never a dependency.
func (c *TaskCache) Set(ctx context.Context, task models.Task) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(task)
	if err != nil {
		return
	}
	c.client.SetEX(ctx, taskKey(task.ID), raw, c.ttl)
}

// Invalidate drops the cached entry for a task id. Called on every update
// and delete so stale rows are never served.
func (c *TaskCache) Invalidate(ctx context.Context, id int) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, taskKey(id))
}
