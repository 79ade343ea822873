package tasks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"helpdeskbot/internal/store"
)

type fakeStore struct {
	pingErr      error
	pingCalls    int
	pingDeadline bool
}

func (s *fakeStore) PutTicket(ctx context.Context, forwardedID int, originChatID int64) error {
	return nil
}

func (s *fakeStore) GetTicket(ctx context.Context, forwardedID int) (int64, bool, error) {
	return 0, false, nil
}

func (s *fakeStore) SetLanguage(ctx context.Context, chatID int64, code string) error {
	return nil
}

func (s *fakeStore) GetLanguage(ctx context.Context, chatID int64) (string, bool, error) {
	return "", false, nil
}

func (s *fakeStore) Ping(ctx context.Context) error {
	s.pingCalls++
	_, s.pingDeadline = ctx.Deadline()
	return s.pingErr
}

func (s *fakeStore) Close() error { return nil }

func testDeps(kv store.Store) TaskDeps {
	return TaskDeps{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Store:  kv,
	}
}

func TestRegisterAllTasks(t *testing.T) {
	t.Parallel()

	taskMap := RegisterAllTasks(testDeps(&fakeStore{}))

	if _, ok := taskMap["store_health"]; !ok {
		t.Fatal("expected store_health in the task registry")
	}
}

func TestStoreHealthTask(t *testing.T) {
	t.Parallel()

	t.Run("healthy store", func(t *testing.T) {
		t.Parallel()
		kv := &fakeStore{}
		task := newStoreHealthTask(testDeps(kv))

		if err := task(context.Background()); err != nil {
			t.Fatalf("task failed: %v", err)
		}
		if kv.pingCalls != 1 {
			t.Errorf("ping calls = %d, want 1", kv.pingCalls)
		}
		if !kv.pingDeadline {
			t.Error("expected the ping context to carry a deadline")
		}
	})

	t.Run("unreachable store", func(t *testing.T) {
		t.Parallel()
		pingErr := errors.New("connection refused")
		kv := &fakeStore{pingErr: pingErr}
		task := newStoreHealthTask(testDeps(kv))

		err := task(context.Background())
		if err == nil {
			t.Fatal("expected an error from a failing health check")
		}
		if !errors.Is(err, pingErr) {
			t.Errorf("error = %v, want wrapped %v", err, pingErr)
		}
	})
}
