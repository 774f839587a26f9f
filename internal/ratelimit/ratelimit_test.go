package ratelimit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"campus-task-assistant/config"
)

func TestFixedWindow_Allow(t *testing.T) {
	store, err := NewFixedWindow(3, time.Minute)
	if err != nil {
		t.Fatalf("NewFixedWindow() error = %v", err)
	}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if ok, _ := store.Allow(ctx, "alice"); !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if ok, _ := store.Allow(ctx, "alice"); ok {
		t.Error("4th request should be denied")
	}
	if ok, _ := store.Allow(ctx, "bob"); !ok {
		t.Error("other keys have their own window")
	}
}

func TestFixedWindow_Reset(t *testing.T) {
	store, _ := NewFixedWindow(1, time.Minute)
	fw := store.(*fixedWindow)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	fw.now = func() time.Time { return now }
	ctx := context.Background()

	if ok, _ := fw.Allow(ctx, "k"); !ok {
		t.Fatal("first request should be allowed")
	}
	if ok, _ := fw.Allow(ctx, "k"); ok {
		t.Fatal("second request in window should be denied")
	}

	now = now.Add(time.Minute)
	if ok, _ := fw.Allow(ctx, "k"); !ok {
		t.Error("request after window should be allowed")
	}
}

func TestFixedWindow_Concurrent(t *testing.T) {
	store, _ := NewFixedWindow(50, time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := store.Allow(ctx, "shared"); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != 50 {
		t.Errorf("allowed = %d, want 50", allowed)
	}
}

func TestTokenBucket_Burst(t *testing.T) {
	store, err := NewTokenBucket(60)
	if err != nil {
		t.Fatalf("NewTokenBucket() error = %v", err)
	}
	ctx := context.Background()

	// burst is perMinute/10
	for i := 0; i < 6; i++ {
		if ok, _ := store.Allow(ctx, "k"); !ok {
			t.Fatalf("request %d within burst should be allowed", i+1)
		}
	}
	if ok, _ := store.Allow(ctx, "k"); ok {
		t.Error("request beyond burst should be denied")
	}
}

func TestConstructors_RejectBadArgs(t *testing.T) {
	if _, err := NewFixedWindow(0, time.Minute); !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("expected ErrInvalidLimit, got %v", err)
	}
	if _, err := NewFixedWindow(1, 0); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("expected ErrInvalidWindow, got %v", err)
	}
	if _, err := NewTokenBucket(0); !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("expected ErrInvalidLimit, got %v", err)
	}
	if _, err := NewRedis(nil, 1, time.Minute); !errors.Is(err, ErrNilClient) {
		t.Errorf("expected ErrNilClient, got %v", err)
	}
	var nilClient *redis.Client
	if _, err := NewRedis(nilClient, 1, time.Minute); !errors.Is(err, ErrNilClient) {
		t.Errorf("expected ErrNilClient for nil *redis.Client, got %v", err)
	}
}

type fakeCounter struct {
	counts  map[string]int64
	expires map[string]time.Duration
	incrErr error
}

func (f *fakeCounter) Incr(ctx context.Context, key string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx, "incr", key)
	if f.incrErr != nil {
		cmd.SetErr(f.incrErr)
		return cmd
	}
	f.counts[key]++
	cmd.SetVal(f.counts[key])
	return cmd
}

func (f *fakeCounter) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	f.expires[key] = expiration
	cmd := redis.NewBoolCmd(ctx, "expire", key, expiration)
	cmd.SetVal(true)
	return cmd
}

func TestRedisWindow_Allow(t *testing.T) {
	fc := &fakeCounter{counts: map[string]int64{}, expires: map[string]time.Duration{}}
	store, err := newRedisWindow(fc, 2, 30*time.Second)
	if err != nil {
		t.Fatalf("newRedisWindow() error = %v", err)
	}
	ctx := context.Background()

	for i, want := range []bool{true, true, false} {
		got, err := store.Allow(ctx, "u1")
		if err != nil {
			t.Fatalf("Allow() error = %v", err)
		}
		if got != want {
			t.Errorf("request %d: Allow() = %v, want %v", i+1, got, want)
		}
	}

	if d := fc.expires["ratelimit:u1"]; d != 30*time.Second {
		t.Errorf("expire = %v, want 30s", d)
	}
}

func TestRedisWindow_Error(t *testing.T) {
	fc := &fakeCounter{counts: map[string]int64{}, expires: map[string]time.Duration{}, incrErr: errors.New("conn refused")}
	store, _ := newRedisWindow(fc, 2, time.Second)

	ok, err := store.Allow(context.Background(), "u1")
	if err == nil || ok {
		t.Errorf("Allow() = %v, %v; want false and an error", ok, err)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.RateLimitConfig
		wantNil bool
		wantErr bool
	}{
		{name: "disabled", cfg: config.RateLimitConfig{}, wantNil: true},
		{name: "fixed window", cfg: config.RateLimitConfig{Enabled: true, Strategy: config.RateLimitFixedWindow, Limit: 1, Window: time.Second}},
		{name: "token bucket", cfg: config.RateLimitConfig{Enabled: true, Strategy: config.RateLimitTokenBucket, Limit: 10}},
		{name: "redis without client", cfg: config.RateLimitConfig{Enabled: true, Strategy: config.RateLimitRedis, Limit: 1, Window: time.Second}, wantErr: true},
		{name: "unknown", cfg: config.RateLimitConfig{Enabled: true, Strategy: "leaky", Limit: 1, Window: time.Second}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := New(tt.cfg, nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if (store == nil) != tt.wantNil {
				t.Errorf("New() store = %v, wantNil %v", store, tt.wantNil)
			}
		})
	}
}
