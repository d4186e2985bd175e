package db

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/LeonSoftLab/SupportAPI/internal/auth"
	"github.com/LeonSoftLab/SupportAPI/internal/model"
)

const userCachePrefix = "supportapi:user:"

// UserCache is an explicit read-through cache in front of a Directory.
// Entries expire after ttl and are invalidated whenever a user row is
// mutated; a Redis outage degrades to direct directory lookups.
type UserCache struct {
	next auth.Directory
	rdb  *redis.Client
	ttl  time.Duration
}

func NewUserCache(next auth.Directory, rdb *redis.Client, ttl time.Duration) *UserCache {
	return &UserCache{next: next, rdb: rdb, ttl: ttl}
}

func (c *UserCache) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	key := userCachePrefix + username

	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var user model.User
		if err := json.Unmarshal(payload, &user); err == nil {
			return &user, nil
		}
		// Unreadable entry: drop it and fall through to the directory.
		c.rdb.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("user cache read failed: %v", err)
	}

	user, err := c.next.FindByUsername(ctx, username)
	if err != nil || user == nil {
		return user, err
	}

	if payload, err := json.Marshal(user); err == nil {
		if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			log.Printf("user cache write failed: %v", err)
		}
	}
	return user, nil
}

// Invalidate must be called after every mutation of the user row.
func (c *UserCache) Invalidate(ctx context.Context, username string) {
	if err := c.rdb.Del(ctx, userCachePrefix+username).Err(); err != nil {
		log.Printf("user cache invalidate failed: %v", err)
	}
}
