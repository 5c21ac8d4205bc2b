// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// fakeWarmer warms genres genres, calling wait before each one.
type fakeWarmer struct {
	genres int
	err    error
	calls  atomic.Int32
	waits  atomic.Int32
}

func (f *fakeWarmer) WarmGenres(ctx context.Context, wait func(context.Context) error) (int, error) {
	f.calls.Add(1)
	if f.err != nil {
		return 0, f.err
	}
	for i := 0; i < f.genres; i++ {
		if wait != nil {
			f.waits.Add(1)
			if err := wait(ctx); err != nil {
				return i, err
			}
		}
	}
	return f.genres, nil
}

func TestWarmupService_CompletesOnce(t *testing.T) {
	warmer := &fakeWarmer{genres: 3}
	svc := NewWarmupService(warmer, 1000, zerolog.Nop())

	err := svc.Serve(context.Background())
	if !errors.Is(err, suture.ErrDoNotRestart) {
		t.Fatalf("Serve() = %v, want ErrDoNotRestart", err)
	}
	if warmer.waits.Load() != 3 {
		t.Errorf("limiter consulted %d times, want 3", warmer.waits.Load())
	}
	if svc.String() != "genre-warmup" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestWarmupService_Unpaced(t *testing.T) {
	warmer := &fakeWarmer{genres: 18}
	svc := NewWarmupService(warmer, 0, zerolog.Nop())

	if err := svc.Serve(context.Background()); !errors.Is(err, suture.ErrDoNotRestart) {
		t.Fatalf("Serve() = %v, want ErrDoNotRestart", err)
	}
	if warmer.waits.Load() != 0 {
		t.Errorf("unpaced warmup waited %d times", warmer.waits.Load())
	}
}

func TestWarmupService_Failure(t *testing.T) {
	boom := errors.New("boom")
	svc := NewWarmupService(&fakeWarmer{err: boom}, 0, zerolog.Nop())

	err := svc.Serve(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("Serve() = %v, want wrapped boom", err)
	}
	if errors.Is(err, suture.ErrDoNotRestart) {
		t.Error("a failed warmup must stay restartable")
	}
}

func TestWarmupService_Canceled(t *testing.T) {
	// One genre per hour: the second wait cannot finish before cancel.
	warmer := &fakeWarmer{genres: 5}
	svc := NewWarmupService(warmer, 1.0/3600, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}

func TestWarmupService_UnderSupervisor(t *testing.T) {
	warmer := &fakeWarmer{genres: 2}
	sup := suture.New("test-sup", suture.Spec{FailureBackoff: 10 * time.Millisecond})
	sup.Add(NewWarmupService(warmer, 0, zerolog.Nop()))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	<-sup.ServeBackground(ctx)

	if got := warmer.calls.Load(); got != 1 {
		t.Errorf("warmup ran %d times, want 1", got)
	}
}
