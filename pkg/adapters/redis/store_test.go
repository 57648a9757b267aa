package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"

	"tapeline/pkg/adapters/redis"
	"tapeline/pkg/domain"
	"tapeline/pkg/ports"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunSessionStoreContract(t, store)
}

func TestRedisStore_TTL(t *testing.T) {
	store, mr := newTestStore(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	snap := &domain.SessionState{CurrentState: "q0", Right: "abc"}
	if err := store.Save(ctx, "s1", snap); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := store.Load(ctx, "s1"); err != domain.ErrSessionNotFound {
		t.Errorf("expected session to expire, got %v", err)
	}
}

func TestRedisStore_Prefix(t *testing.T) {
	store, mr := newTestStore(t, redis.WithPrefix("tm:"))
	ctx := context.Background()

	if err := store.Save(ctx, "s1", &domain.SessionState{CurrentState: "q0"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !mr.Exists("tm:s1") {
		t.Error("expected key under the configured prefix")
	}
}
