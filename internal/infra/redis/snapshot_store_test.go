package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"trivia-cli/internal/domain"
)

func newTestStore(t *testing.T) (*SnapshotStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSnapshotStore(client, time.Hour), mr
}

func TestSaveSetsKeyWithTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	state := domain.QuizState{UserName: "Alice", RemainingSeconds: 120}
	if err := store.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !mr.Exists("quiz:state") {
		t.Fatalf("expected redis key to be set")
	}
	if ttl := mr.TTL("quiz:state"); ttl != time.Hour {
		t.Fatalf("expected 1h ttl, got %v", ttl)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	answer := "true"
	state := domain.QuizState{
		UserName:         "Bob",
		CurrentIndex:     1,
		Answers:          []*string{&answer, nil},
		RemainingSeconds: 55,
	}
	if err := store.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, ok, err := store.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if loaded.UserName != "Bob" || loaded.CurrentIndex != 1 || *loaded.Answers[0] != "true" || loaded.Answers[1] != nil {
		t.Fatalf("unexpected state: %+v", loaded)
	}
}

func TestLoadAbsentAndMalformed(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	if _, ok, err := store.Load(ctx); ok || err != nil {
		t.Fatalf("expected absent on empty redis, got ok=%v err=%v", ok, err)
	}

	mr.Set("quiz:state", "{broken")
	if _, ok, err := store.Load(ctx); ok || err != nil {
		t.Fatalf("malformed snapshot should read as absent, got ok=%v err=%v", ok, err)
	}
}

func TestClearRemovesKey(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	if err := store.Save(ctx, domain.QuizState{UserName: "Eve"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if mr.Exists("quiz:state") {
		t.Fatalf("expected redis key removed")
	}
}
