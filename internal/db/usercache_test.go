package db

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/LeonSoftLab/SupportAPI/internal/model"
)

type countingDirectory struct {
	user  *model.User
	calls int
}

func (d *countingDirectory) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	d.calls++
	if d.user != nil && d.user.Username == username {
		u := *d.user
		return &u, nil
	}
	return nil, nil
}

func newTestCache(t *testing.T, dir *countingDirectory, ttl time.Duration) (*UserCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewUserCache(dir, rdb, ttl), mr
}

func TestUserCacheReadThrough(t *testing.T) {
	dir := &countingDirectory{user: &model.User{
		Username: "leon", EmployeeID: 7, Role: model.RoleUser, PasswordHash: "x",
	}}
	cache, _ := newTestCache(t, dir, time.Minute)

	for i := 0; i < 3; i++ {
		user, err := cache.FindByUsername(context.Background(), "leon")
		if err != nil {
			t.Fatalf("lookup %d: %v", i, err)
		}
		if user == nil || user.Username != "leon" || user.EmployeeID != 7 {
			t.Fatalf("lookup %d: wrong user %+v", i, user)
		}
	}
	if dir.calls != 1 {
		t.Fatalf("expected 1 directory hit, got %d", dir.calls)
	}
}

func TestUserCacheMiss(t *testing.T) {
	dir := &countingDirectory{}
	cache, _ := newTestCache(t, dir, time.Minute)

	user, err := cache.FindByUsername(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected absent user, got %+v", user)
	}
	// Absent users are never cached.
	if _, err := cache.FindByUsername(context.Background(), "nobody"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir.calls != 2 {
		t.Fatalf("expected 2 directory hits, got %d", dir.calls)
	}
}

func TestUserCacheExpiry(t *testing.T) {
	dir := &countingDirectory{user: &model.User{Username: "leon", Role: model.RoleUser}}
	cache, mr := newTestCache(t, dir, time.Second)

	if _, err := cache.FindByUsername(context.Background(), "leon"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mr.FastForward(2 * time.Second)
	if _, err := cache.FindByUsername(context.Background(), "leon"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir.calls != 2 {
		t.Fatalf("expected refetch after TTL, got %d directory hits", dir.calls)
	}
}

func TestUserCacheInvalidate(t *testing.T) {
	dir := &countingDirectory{user: &model.User{Username: "leon", Role: model.RoleUser}}
	cache, _ := newTestCache(t, dir, time.Minute)

	if _, err := cache.FindByUsername(context.Background(), "leon"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dir.user.Disabled = true
	cache.Invalidate(context.Background(), "leon")

	user, err := cache.FindByUsername(context.Background(), "leon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !user.Disabled {
		t.Fatal("expected invalidation to surface the disabled flag")
	}
}
